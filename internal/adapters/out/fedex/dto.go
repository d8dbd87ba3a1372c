// Package fedex implements the carrier-rate port against the FedEx REST
// rating API. It is an anti-corruption layer: wire DTOs live here and never
// cross into the core, which only sees parsed CarrierRate values.
package fedex

// tokenResponse is the OAuth reply from the carrier's token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// rateRequestDTO is the quote-request payload for the rating endpoint.
// CustomerTransactionID echoes in the carrier's reply and logs, correlating
// the exchange with the originating quote.
type rateRequestDTO struct {
	AccountNumber         accountNumberDTO     `json:"accountNumber"`
	CustomerTransactionID string               `json:"customerTransactionId,omitempty"`
	RequestedShipment     requestedShipmentDTO `json:"requestedShipment"`
}

type accountNumberDTO struct {
	Value string `json:"value"`
}

type requestedShipmentDTO struct {
	Shipper                   partyDTO          `json:"shipper"`
	Recipient                 partyDTO          `json:"recipient"`
	PickupType                string            `json:"pickupType"`
	RateRequestType           []string          `json:"rateRequestType"`
	RequestedPackageLineItems []packageLineItem `json:"requestedPackageLineItems"`
}

type partyDTO struct {
	Address addressDTO `json:"address"`
}

type addressDTO struct {
	PostalCode          string `json:"postalCode"`
	CountryCode         string `json:"countryCode"`
	StateOrProvinceCode string `json:"stateOrProvinceCode,omitempty"`
	City                string `json:"city,omitempty"`
}

type packageLineItem struct {
	Weight     weightDTO      `json:"weight"`
	Dimensions *dimensionsDTO `json:"dimensions,omitempty"`
}

type weightDTO struct {
	Units string  `json:"units"`
	Value float64 `json:"value"`
}

type dimensionsDTO struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Units  string  `json:"units"`
}

// rateResponseDTO is the rating reply. Only the fields the mapping consumes
// are declared; everything else in the carrier payload is ignored.
type rateResponseDTO struct {
	Output rateOutputDTO `json:"output"`
}

type rateOutputDTO struct {
	RateReplyDetails []rateReplyDetailDTO `json:"rateReplyDetails"`
}

// rateReplyDetailDTO is one service offering in the reply. A recognized
// service with no usable rated-shipment detail is malformed input and is
// skipped without failing the whole response.
type rateReplyDetailDTO struct {
	ServiceType          string                   `json:"serviceType"`
	ServiceName          string                   `json:"serviceName"`
	RatedShipmentDetails []ratedShipmentDetailDTO `json:"ratedShipmentDetails"`
	OperationalDetail    *operationalDetailDTO    `json:"operationalDetail"`
}

// ratedShipmentDetailDTO is one rate variant for a service. RateType is
// "ACCOUNT" for the negotiated price and "LIST" for the published one; the
// account variant wins when both are present.
type ratedShipmentDetailDTO struct {
	RateType       string  `json:"rateType"`
	TotalNetCharge float64 `json:"totalNetCharge"`
}

// operationalDetailDTO carries the transit indication: either a dated
// delivery commitment or a free-text transit duration such as "THREE_DAYS".
type operationalDetailDTO struct {
	DeliveryDate string `json:"deliveryDate"`
	TransitTime  string `json:"transitTime"`
}
