package clever

import "time"

type SendEmailResponse struct {
	Status        string `json:"status"`
	StatusMessage string `json:"status_message"`
}

type VerifyLinkResponse struct {
	Result string `json:"result" validate:"required"`
	// SecretCode is not part of the backend response. It is the code
	// extracted from the emailed link and gets injected after decoding, so
	// the caller can carry it into ObtainUserSecret.
	SecretCode string `json:"secret_code"`
}

type VerificationResponse struct {
	Result string `json:"result"`
}

type UserSecretResponse struct {
	UserSecret           string               `json:"userSecret" validate:"required"`
	VerificationResponse VerificationResponse `json:"verificationResponse"`
}

type ApiTokenData struct {
	Token      string `json:"token" validate:"required"`
	CustomerID string `json:"customerId"`
}

type ApiTokenResponse struct {
	Status        string        `json:"status"`
	StatusMessage string        `json:"status_message"`
	Data          *ApiTokenData `json:"data"`
}

type UserData struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	CustomerID string `json:"customerId"`
	BoxID      string `json:"boxId"`
}

type UserInfo struct {
	Status        string   `json:"status"`
	StatusMessage string   `json:"status_message"`
	Data          UserData `json:"data"`
}

type Transaction struct {
	ChargePointID  string    `json:"chargePointId"`
	StartTime      time.Time `json:"startTime"`
	StopTime       time.Time `json:"stopTime"`
	ConsumptionKWh float64   `json:"consumptionKwh"`
}

type Transactions struct {
	Status        string        `json:"status"`
	StatusMessage string        `json:"status_message"`
	Data          []Transaction `json:"data"`
}

type EvseConnector struct {
	ConnectorID int    `json:"connectorId"`
	Status      string `json:"status"`
	PlugType    string `json:"plugType"`
}

type EvseData struct {
	ChargeBoxID  string          `json:"chargeBoxId"`
	SerialNumber string          `json:"serialNumber"`
	Online       bool            `json:"online"`
	Connectors   []EvseConnector `json:"connectors"`
}

type EvseInfo struct {
	Status        string   `json:"status"`
	StatusMessage string   `json:"status_message"`
	Data          EvseData `json:"data"`
}

type SurchargePeriod struct {
	ValidFrom   time.Time `json:"validFrom"`
	ValidTo     time.Time `json:"validTo"`
	PricePerKWh float64   `json:"pricePerKwh"`
}

type SurchargeData struct {
	Currency string            `json:"currency"`
	Periods  []SurchargePeriod `json:"surcharges"`
}

type EnergySurcharge struct {
	Status        string        `json:"status"`
	StatusMessage string        `json:"status_message"`
	Data          SurchargeData `json:"data"`
}

type UserSecretRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Token     string `json:"token"`
}
