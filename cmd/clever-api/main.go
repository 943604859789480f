package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	clever "github.com/jeppebech/clever-api"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	GetConfig().ReadConfig()
	GetDB().Connect()
	GetDB().InitDBStructure()

	config := clever.DefaultConfig()
	if GetConfig().BaseURL != "" {
		config.BaseURL = GetConfig().BaseURL
	}
	config.DebugLog = GetConfig().DebugLog
	client := clever.NewClient(config)
	defer client.Close()

	switch os.Args[1] {
	case "login":
		login(client)
	case "info":
		runQuery(client, func(sub *clever.Subscription) (interface{}, error) {
			return sub.GetUserInfo()
		})
	case "transactions":
		boxID := ""
		if len(os.Args) > 2 {
			boxID = os.Args[2]
		}
		runQuery(client, func(sub *clever.Subscription) (interface{}, error) {
			return sub.GetTransactions(boxID)
		})
	case "evse":
		runQuery(client, func(sub *clever.Subscription) (interface{}, error) {
			return sub.GetEvseInfo()
		})
	case "surcharge":
		runQuery(client, func(sub *clever.Subscription) (interface{}, error) {
			return sub.GetEnergySurcharge()
		})
	case "watch":
		watch(client)
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("usage: clever-api login|info|transactions [boxId]|evse|surcharge|watch")
}

// login walks through the four step Clever auth exchange and stores the
// resulting user secret. The backend mails a verification link which the
// user pastes back in.
func login(client *clever.Client) {
	email := GetConfig().Email
	if email == "" {
		log.Fatalln("CLEVER_EMAIL is not set")
	}

	auth := clever.NewAuth(client)
	if _, err := auth.SendAuthEmail(email); err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("A verification email was sent to %s.\n", email)
	fmt.Print("Paste the link from the email: ")

	reader := bufio.NewReader(os.Stdin)
	link, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalln(err)
	}
	link = strings.TrimSpace(link)

	verified, err := auth.VerifyLink(link, email)
	if err != nil {
		log.Fatalln(err)
	}

	secret, err := auth.ObtainUserSecret(email, GetConfig().FirstName, GetConfig().LastName, verified.SecretCode)
	if err != nil {
		log.Fatalln(err)
	}

	// the token exchange is what the read queries do on demand, run it once
	// here to confirm the secret works
	if _, err := auth.ObtainApiToken(secret.UserSecret, email); err != nil {
		log.Fatalln(err)
	}

	GetDB().SetSetting(SettingEmail, email)
	GetDB().SetSetting(SettingUserSecret, secret.UserSecret)
	fmt.Println("Login successful, user secret stored.")
}

func runQuery(client *clever.Client, query func(sub *clever.Subscription) (interface{}, error)) {
	provider := NewApiTokenProvider(client)
	apiToken := provider.GetOrRefreshApiToken(GetConfig().Email)
	if apiToken == "" {
		os.Exit(1)
	}

	sub := clever.NewSubscription(client, apiToken)
	res, err := query(sub)
	if err != nil {
		log.Fatalln(err)
	}
	s, _ := json.MarshalIndent(res, "", "\t")
	fmt.Println(string(s))
}

func watch(client *clever.Client) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	poller := &StatusPoller{
		Interrupt: make(chan os.Signal),
		Client:    client,
		Provider:  NewApiTokenProvider(client),
	}
	poller.Poll()

	<-interrupt
	poller.Interrupt <- os.Interrupt
	log.Println("Shutting down...")
}
