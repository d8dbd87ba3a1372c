package fedex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/rates"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/core/ports"
	"shiprates/internal/pkg/errs"
)

const (
	oauthPath = "/oauth/token"
	quotePath = "/rate/v1/rates/quotes"

	pickupTypeDropoff = "DROPOFF_AT_FEDEX_LOCATION"

	rateTypeAccount = "ACCOUNT"
	rateTypeList    = "LIST"
)

// commitDateLayouts are the timestamp shapes the carrier uses for dated
// delivery commitments.
var commitDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ClientConfig carries the carrier credentials and endpoint.
type ClientConfig struct {
	BaseURL       string
	ClientID      string
	ClientSecret  string
	AccountNumber string
}

// Validate checks that all credential fields are present.
func (c ClientConfig) Validate() error {
	if c.BaseURL == "" {
		return errs.NewValueIsRequiredError("baseURL")
	}
	if c.ClientID == "" {
		return errs.NewValueIsRequiredError("clientID")
	}
	if c.ClientSecret == "" {
		return errs.NewValueIsRequiredError("clientSecret")
	}
	if c.AccountNumber == "" {
		return errs.NewValueIsRequiredError("accountNumber")
	}
	return nil
}

// Client implements the CarrierRateClient port against the FedEx REST rating
// API. The bearer token is held in a TokenCache; the HTTP client is injected
// so the composition root owns timeouts.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	tokens     *TokenCache
	schedule   services.Schedule
}

// NewClient creates a carrier client. The clock drives token expiry checks.
func NewClient(config ClientConfig, httpClient *http.Client, clock ports.Clock) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
		tokens:     NewTokenCache(clock),
		schedule:   services.NewSchedule(),
	}, nil
}

// GetRates quotes the packed shipment with the carrier and returns the
// parsed rates. An empty slice with a nil error means the carrier offered
// nothing; transport and decoding failures are errors.
func (c *Client) GetRates(ctx context.Context, request ports.RateRequest) ([]rates.CarrierRate, error) {
	token, err := c.tokens.Token(ctx, c.fetchToken)
	if err != nil {
		return nil, fmt.Errorf("obtaining carrier token: %w", err)
	}

	body, err := json.Marshal(buildRateRequest(c.config.AccountNumber, request))
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.config.BaseURL+quotePath, bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("carrier rate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Invalidate()
		return nil, fmt.Errorf("carrier rejected token: status %d", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("carrier rate request: status %d", resp.StatusCode)
	}

	var reply rateResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("decoding carrier response: %w", err)
	}

	return c.toCarrierRates(reply, request.QuotedAt), nil
}

// fetchToken performs the client-credentials handshake.
func (c *Client) fetchToken(ctx context.Context) (string, time.Duration, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.config.ClientID)
	form.Set("client_secret", c.config.ClientSecret)

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.config.BaseURL+oauthPath, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", 0, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", 0, fmt.Errorf("carrier token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", 0, fmt.Errorf("carrier token request: status %d", resp.StatusCode)
	}

	var reply tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", 0, fmt.Errorf("decoding carrier token: %w", err)
	}

	if reply.AccessToken == "" {
		return "", 0, errs.NewValueIsRequiredError("access_token")
	}

	return reply.AccessToken, time.Duration(reply.ExpiresIn) * time.Second, nil
}

// buildRateRequest maps the port request to the carrier payload. Boxes packed
// without dimension data are quoted by weight alone.
func buildRateRequest(accountNumber string, request ports.RateRequest) rateRequestDTO {
	lineItems := make([]packageLineItem, 0, len(request.Packages))
	for _, pkg := range request.Packages {
		item := packageLineItem{
			Weight: weightDTO{Units: "LB", Value: pkg.WeightLb},
		}
		if pkg.LengthIn > 0 && pkg.WidthIn > 0 && pkg.HeightIn > 0 {
			item.Dimensions = &dimensionsDTO{
				Length: pkg.LengthIn,
				Width:  pkg.WidthIn,
				Height: pkg.HeightIn,
				Units:  "IN",
			}
		}
		lineItems = append(lineItems, item)
	}

	return rateRequestDTO{
		AccountNumber:         accountNumberDTO{Value: accountNumber},
		CustomerTransactionID: request.QuoteID.String(),
		RequestedShipment: requestedShipmentDTO{
			Shipper: partyDTO{Address: addressDTO{
				PostalCode:          request.Origin.PostalCode().String(),
				CountryCode:         request.Origin.Country(),
				StateOrProvinceCode: request.Origin.Province(),
				City:                request.Origin.City(),
			}},
			Recipient: partyDTO{Address: addressDTO{
				PostalCode:          request.Destination.PostalCode().String(),
				CountryCode:         request.Destination.Country(),
				StateOrProvinceCode: request.Destination.Province(),
				City:                request.Destination.City(),
			}},
			PickupType:                pickupTypeDropoff,
			RateRequestType:           []string{rateTypeAccount, rateTypeList},
			RequestedPackageLineItems: lineItems,
		},
	}
}

// toCarrierRates maps the reply to parsed rates. A service missing its rate
// detail is skipped rather than failing the whole reply; the allow-list
// filter is the assembler's concern, not the adapter's.
func (c *Client) toCarrierRates(reply rateResponseDTO, quotedAt time.Time) []rates.CarrierRate {
	parsed := make([]rates.CarrierRate, 0, len(reply.Output.RateReplyDetails))
	for _, detail := range reply.Output.RateReplyDetails {
		charge, ok := preferredCharge(detail.RatedShipmentDetails)
		if !ok {
			continue
		}

		totalCharge, err := kernel.NewMoney(int64(math.Round(charge * 100)))
		if err != nil {
			continue
		}

		rate, err := rates.NewCarrierRate(
			detail.ServiceType,
			detail.ServiceName,
			totalCharge,
			c.transitDays(detail.OperationalDetail, quotedAt),
		)
		if err != nil {
			continue
		}

		parsed = append(parsed, rate)
	}

	return parsed
}

// preferredCharge picks the negotiated account variant over the published
// list variant, falling back to whatever single variant was sent.
func preferredCharge(details []ratedShipmentDetailDTO) (float64, bool) {
	if len(details) == 0 {
		return 0, false
	}

	for _, rateType := range []string{rateTypeAccount, rateTypeList} {
		for _, detail := range details {
			if detail.RateType == rateType {
				return detail.TotalNetCharge, true
			}
		}
	}

	return details[0].TotalNetCharge, true
}

// transitDays resolves the transit indication to business days. A dated
// commitment wins; otherwise the free-text duration is parsed.
func (c *Client) transitDays(detail *operationalDetailDTO, quotedAt time.Time) int {
	if detail == nil {
		return rates.DefaultTransitDays
	}

	if detail.DeliveryDate != "" {
		for _, layout := range commitDateLayouts {
			if commit, err := time.Parse(layout, detail.DeliveryDate); err == nil {
				return c.schedule.BusinessDaysBetween(quotedAt, commit)
			}
		}
	}

	return rates.ParseTransitDays(detail.TransitTime)
}
