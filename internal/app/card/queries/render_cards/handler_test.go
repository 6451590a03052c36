package render_cards

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
	"github.com/murkotick/shoe-card-service/internal/app/card/domain/services"
	"github.com/murkotick/shoe-card-service/internal/app/card/dto"
	"github.com/murkotick/shoe-card-service/internal/app/card/queries/render_card"
	"github.com/murkotick/shoe-card-service/internal/pkg/clock"
	"github.com/murkotick/shoe-card-service/internal/pkg/currency"
	"github.com/murkotick/shoe-card-service/internal/pkg/inflect"
	"github.com/murkotick/shoe-card-service/internal/pkg/nav"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var now = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

func newBatch(concurrency int) *Handler {
	single := render_card.NewHandler(
		services.NewVariantResolver(clock.NewFake(now), 0),
		services.NewPresenter(currency.USD(), inflect.English{}),
		services.NewStyler(domain.DefaultPalette()),
		nav.NewPathBuilder(""),
		nil,
	)
	return NewHandler(single, concurrency)
}

func TestExecute_PreservesOrderAndFallsBack(t *testing.T) {
	products := make([]dto.ProductDTO, 0, 50)
	for i := 0; i < 50; i++ {
		p := dto.ProductDTO{
			Slug:        fmt.Sprintf("shoe-%02d", i),
			Price:       "5000",
			ReleaseDate: "2020-01-01",
			NumOfColors: json.Number(strconv.Itoa(i % 3)),
		}
		if i%10 == 0 {
			p.Price = "not-a-price"
		}
		products = append(products, p)
	}

	cards, err := newBatch(4).Execute(context.Background(), products)
	require.NoError(t, err)
	require.Len(t, cards, len(products))

	for i, card := range cards {
		assert.Equal(t, products[i].Slug, card.Slug)
		if i%10 == 0 {
			assert.True(t, card.Failed(), "card %d should be a fallback", i)
			assert.Nil(t, card.Presentation)
		} else {
			assert.False(t, card.Failed())
			assert.Equal(t, "$50.00", card.Presentation.FormattedPrice)
		}
		assert.Equal(t, domain.VariantDefault(), card.Variant)
	}
}

func TestExecute_Empty(t *testing.T) {
	cards, err := newBatch(0).Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestExecute_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newBatch(2).Execute(ctx, []dto.ProductDTO{
		{Slug: "a", Price: "1", ReleaseDate: "2024-01-01"},
		{Slug: "b", Price: "1", ReleaseDate: "2024-01-01"},
	})
	assert.ErrorIs(t, err, context.Canceled)
}
