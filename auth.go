package clever

import (
	"net/http"
	"net/url"
)

// Auth runs the Clever login exchange. The four steps are strictly
// sequential and caller-driven: the caller carries the secret code, user
// secret and API token forward between calls, no state is kept here.
type Auth struct {
	API     Doer
	BaseURL string
}

func NewAuth(client *Client) *Auth {
	return &Auth{
		API:     client,
		BaseURL: client.Config.BaseURL,
	}
}

// SendAuthEmail requests a verification email with a login link.
func (a *Auth) SendAuthEmail(email string) (*SendEmailResponse, error) {
	var m SendEmailResponse
	if err := a.API.Request(http.MethodGet, SendAuthEmailURL(a.BaseURL, email), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// VerifyLink exchanges the link from the verification email for a confirmed
// secret code. The secretCode query parameter of the link is verified against
// the backend and injected into the returned model.
func (a *Auth) VerifyLink(authLink string, email string) (*VerifyLinkResponse, error) {
	u, err := url.Parse(authLink)
	if err != nil {
		return nil, err
	}
	secretCode := u.Query().Get("secretCode")

	var m VerifyLinkResponse
	if err := a.API.Request(http.MethodGet, VerifyLinkURL(a.BaseURL, secretCode, email), nil, &m); err != nil {
		return nil, err
	}
	m.SecretCode = secretCode
	if m.Result != "Verified" {
		return nil, &ApiError{Message: m.Result}
	}
	return &m, nil
}

// ObtainUserSecret exchanges the secret code for the durable per-user secret.
func (a *Auth) ObtainUserSecret(email string, firstName string, lastName string, secretCode string) (*UserSecretResponse, error) {
	payload := &UserSecretRequest{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Token:     secretCode,
	}

	var m UserSecretResponse
	if err := a.API.Request(http.MethodPost, ObtainUserSecretURL(a.BaseURL), payload, &m); err != nil {
		return nil, err
	}
	// the backend reports a denied registration with the literal string
	// "null" as the secret
	if m.UserSecret == "null" {
		return nil, &ApiError{Message: m.VerificationResponse.Result}
	}
	return &m, nil
}

// ObtainApiToken exchanges the user secret for an API token. This step can be
// repeated whenever a fresh token is needed.
func (a *Auth) ObtainApiToken(userSecret string, email string) (*ApiTokenResponse, error) {
	var m ApiTokenResponse
	if err := a.API.Request(http.MethodGet, ObtainApiTokenURL(a.BaseURL, userSecret, email), nil, &m); err != nil {
		return nil, err
	}
	if m.Data == nil {
		return nil, &ApiError{Message: m.StatusMessage}
	}
	return &m, nil
}
