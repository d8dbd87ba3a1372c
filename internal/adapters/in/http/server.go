// Package http adapts the quote use case to the HTTP transport. All wire
// types come from the generated servers package; the translation to domain
// values happens here and nowhere else.
package http

import (
	"errors"
	"net/http"

	"shiprates/internal/core/application/usecases/queries"
	"shiprates/internal/core/domain/model/cart"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/generated/servers"
	"shiprates/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	getShippingOptionsHandler queries.GetShippingOptionsQueryHandler
}

// NewServer creates a new HTTP server with the required query handler.
func NewServer(getShippingOptionsHandler queries.GetShippingOptionsQueryHandler) *Server {
	return &Server{
		getShippingOptionsHandler: getShippingOptionsHandler,
	}
}

// QuoteShippingOptions handles POST /api/v1/shipping-options.
//
// Error mapping: a payload that cannot bind or produce a valid cart is 400;
// an unreachable carrier is 502; everything else is 500. A successful quote
// with zero offers is 200 with an empty array, never an error.
func (s *Server) QuoteShippingOptions(ctx echo.Context, params servers.QuoteShippingOptionsParams) error {
	var payload servers.CartPayload
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	c, err := toCart(payload, params)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cart: " + err.Error(),
		})
	}

	query, err := queries.NewGetShippingOptionsQuery(c)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cart: " + err.Error(),
		})
	}

	options, err := s.getShippingOptionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, queries.ErrCarrierUnavailable) {
			return ctx.JSON(http.StatusBadGateway, servers.Error{
				Code:    http.StatusBadGateway,
				Message: "Carrier rate service unavailable",
			})
		}
		if errors.Is(err, errs.ErrInvalidConfiguration) {
			return ctx.JSON(http.StatusInternalServerError, servers.Error{
				Code:    http.StatusInternalServerError,
				Message: "Rating configuration is incomplete",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to quote shipping options",
		})
	}

	response := make([]servers.ShippingOption, len(options))
	for i, option := range options {
		response[i] = servers.ShippingOption{
			Name:        option.Name,
			Code:        option.Code,
			Price:       option.Price,
			Description: option.Description,
			Currency:    option.Currency,
			DeliveryMin: option.DeliveryMin,
			DeliveryMax: option.DeliveryMax,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// toCart translates the wire payload into the domain cart.
func toCart(payload servers.CartPayload, params servers.QuoteShippingOptionsParams) (cart.Cart, error) {
	address, err := cart.NewAddress(
		payload.Destination.Country,
		payload.Destination.PostalCode,
		deref(payload.Destination.Province),
		deref(payload.Destination.City),
	)
	if err != nil {
		return cart.Cart{}, err
	}

	items := make([]cart.Item, 0, len(payload.Items))
	for _, wireItem := range payload.Items {
		price, priceErr := kernel.NewMoney(wireItem.PriceCents)
		if priceErr != nil {
			return cart.Cart{}, priceErr
		}

		var properties map[string]string
		if wireItem.Properties != nil {
			properties = *wireItem.Properties
		}

		item, itemErr := cart.NewItem(
			wireItem.Sku,
			wireItem.Name,
			wireItem.Quantity,
			float64(wireItem.Grams),
			price,
			wireItem.RequiresShipping,
			properties,
		)
		if itemErr != nil {
			return cart.Cart{}, itemErr
		}
		items = append(items, item)
	}

	return cart.NewCart(address, items, deref(payload.Currency), deref(params.Locale))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
