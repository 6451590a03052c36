package card

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/shoe-card-service/internal/app/card/dto"
)

// mapProduct decodes a product message through its JSON form, so field
// names and type checks match the HTTP API exactly.
func mapProduct(m proto.Message) (dto.ProductDTO, error) {
	raw, err := protojson.Marshal(m)
	if err != nil {
		return dto.ProductDTO{}, fmt.Errorf("encode product: %w", err)
	}
	var in dto.ProductDTO
	if err := json.Unmarshal(raw, &in); err != nil {
		return dto.ProductDTO{}, fmt.Errorf("decode product: %w", err)
	}
	return in, nil
}

func mapProducts(values []*structpb.Value) ([]dto.ProductDTO, error) {
	out := make([]dto.ProductDTO, 0, len(values))
	for _, v := range values {
		in, err := mapProduct(v)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

// toStruct converts any JSON-encodable value into a Struct.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode reply: %w", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}
	return out, nil
}
