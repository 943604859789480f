package clever

import "net/url"

// The Clever backend routes the email flow under customer endpoints and the
// authorized read queries under paths templated with the API token.

func SendAuthEmailURL(baseURL string, email string) string {
	params := url.Values{}
	params.Add("email", email)
	return baseURL + "/mobile/customer/verifyEmail?" + params.Encode()
}

func VerifyLinkURL(baseURL string, secretCode string, email string) string {
	params := url.Values{}
	params.Add("token", secretCode)
	params.Add("email", email)
	return baseURL + "/mobile/customer/verifyEmailToken?" + params.Encode()
}

func ObtainUserSecretURL(baseURL string) string {
	return baseURL + "/mobile/customer/registerProfile"
}

func ObtainApiTokenURL(baseURL string, userSecret string, email string) string {
	params := url.Values{}
	params.Add("secret", userSecret)
	params.Add("email", email)
	return baseURL + "/mobile/customer/profileLogin?" + params.Encode()
}

func UserInfoURL(baseURL string, apiToken string) string {
	return baseURL + "/mobile/" + apiToken + "/userinfo"
}

func TransactionsURL(baseURL string, apiToken string, boxID string) string {
	target := baseURL + "/mobile/" + apiToken + "/transactions/consumption"
	if boxID != "" {
		params := url.Values{}
		params.Add("boxId", boxID)
		target += "?" + params.Encode()
	}
	return target
}

func EvseInfoURL(baseURL string, apiToken string) string {
	return baseURL + "/mobile/" + apiToken + "/evse/info"
}

func EnergySurchargeURL(baseURL string, apiToken string) string {
	return baseURL + "/mobile/" + apiToken + "/energitillaeg"
}
