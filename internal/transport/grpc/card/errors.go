package card

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
)

// mapError translates domain sentinel errors into gRPC status codes.
// Invalid input carries the offending field as a BadRequest detail.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		st := status.New(codes.InvalidArgument, err.Error())
		detailed, derr := st.WithDetails(&errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: invalid.Field, Description: invalid.Err.Error()},
			},
		})
		if derr != nil {
			return st.Err()
		}
		return detailed.Err()
	}

	if errors.Is(err, domain.ErrUnknownVariant) {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}
