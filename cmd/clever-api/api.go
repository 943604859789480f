package main

import (
	"log"
	"time"

	clever "github.com/jeppebech/clever-api"
)

// ApiTokenProvider hands out a usable API token for the configured account.
// Tokens come from the cache when possible; on a miss the stored user secret
// is exchanged for a fresh one.
type ApiTokenProvider struct {
	Auth  *clever.Auth
	Cache *clever.TokenCache
}

func NewApiTokenProvider(client *clever.Client) *ApiTokenProvider {
	cache, err := clever.NewTokenCache(8 * time.Hour)
	if err != nil {
		log.Panicln(err)
	}
	return &ApiTokenProvider{
		Auth:  clever.NewAuth(client),
		Cache: cache,
	}
}

func (p *ApiTokenProvider) GetOrRefreshApiToken(email string) string {
	apiToken := p.Cache.Get(email)
	if apiToken == "" {
		userSecret := GetDB().GetSetting(SettingUserSecret)
		if userSecret == "" {
			log.Println("no user secret stored, run login first")
			return ""
		}
		resp, err := p.Auth.ObtainApiToken(userSecret, email)
		if err != nil {
			log.Println(err)
			return ""
		}
		p.Cache.Set(email, resp.Data.Token)
		apiToken = resp.Data.Token
	}
	return apiToken
}
