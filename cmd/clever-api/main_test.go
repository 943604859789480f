package main

import (
	"os"
	"testing"

	clever "github.com/jeppebech/clever-api"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	os.Setenv("DB_FILE", ":memory:")
	os.Setenv("CRYPT_KEY", "12345678901234567890123456789012")
	os.Setenv("CLEVER_EMAIL", "jeppe@example.dk")
	GetConfig().ReadConfig()
	GetDB().Connect()
	ResetTestDB()
	code := m.Run()
	os.Exit(code)
}

func ResetTestDB() {
	GetDB().ResetDBStructure()
	GetDB().InitDBStructure()
}

type DoerMock struct {
	mock.Mock
}

func (d *DoerMock) Request(method string, target string, payload interface{}, result interface{}) error {
	args := d.Called(method, target, payload, result)
	return args.Error(0)
}

var _ clever.Doer = (*DoerMock)(nil)
