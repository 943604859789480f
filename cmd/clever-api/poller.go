package main

import (
	"log"
	"os"
	"time"

	clever "github.com/jeppebech/clever-api"
)

// StatusPoller periodically reads the EVSE status and the current energy
// surcharge and logs both.
type StatusPoller struct {
	Interrupt chan os.Signal
	Client    *clever.Client
	Provider  *ApiTokenProvider
}

func (p *StatusPoller) Poll() {
	go func() {
		ticker := time.NewTicker(time.Minute * time.Duration(GetConfig().PollInterval))
		defer ticker.Stop()
		p.poll()
		for {
			select {
			case <-ticker.C:
				p.poll()
			case <-p.Interrupt:
				return
			}
		}
	}()
}

func (p *StatusPoller) poll() {
	apiToken := p.Provider.GetOrRefreshApiToken(GetConfig().Email)
	if apiToken == "" {
		return
	}
	sub := clever.NewSubscription(p.Client, apiToken)

	evse, err := sub.GetEvseInfo()
	if err != nil {
		log.Println(err)
	} else {
		log.Printf("charge box %s online=%t, %d connector(s)\n",
			evse.Data.ChargeBoxID, evse.Data.Online, len(evse.Data.Connectors))
	}

	surcharge, err := sub.GetEnergySurcharge()
	if err != nil {
		log.Println(err)
		return
	}
	for _, period := range surcharge.Data.Periods {
		log.Printf("energy surcharge %.2f %s/kWh valid %s - %s\n",
			period.PricePerKWh, surcharge.Data.Currency,
			period.ValidFrom.Format("2006-01-02"), period.ValidTo.Format("2006-01-02"))
	}
}
