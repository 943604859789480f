package clever

import "net/http"

// Subscription issues the read-only queries of a Clever subscription. All
// four operations are stateless and may run concurrently against the same
// token; callers must not swap ApiToken while requests are in flight.
type Subscription struct {
	API      Doer
	BaseURL  string
	ApiToken string
}

func NewSubscription(client *Client, apiToken string) *Subscription {
	return &Subscription{
		API:      client,
		BaseURL:  client.Config.BaseURL,
		ApiToken: apiToken,
	}
}

func (s *Subscription) GetUserInfo() (*UserInfo, error) {
	var m UserInfo
	if err := s.API.Request(http.MethodGet, UserInfoURL(s.BaseURL, s.ApiToken), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetTransactions lists charging transactions. A non-empty boxID restricts
// the result to one charge box, an empty boxID returns all of them.
func (s *Subscription) GetTransactions(boxID string) (*Transactions, error) {
	var m Transactions
	if err := s.API.Request(http.MethodGet, TransactionsURL(s.BaseURL, s.ApiToken, boxID), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Subscription) GetEvseInfo() (*EvseInfo, error) {
	var m EvseInfo
	if err := s.API.Request(http.MethodGet, EvseInfoURL(s.BaseURL, s.ApiToken), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetEnergySurcharge returns the current energy surcharge (energitillaeg)
// tariff periods.
func (s *Subscription) GetEnergySurcharge() (*EnergySurcharge, error) {
	var m EnergySurcharge
	if err := s.API.Request(http.MethodGet, EnergySurchargeURL(s.BaseURL, s.ApiToken), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
