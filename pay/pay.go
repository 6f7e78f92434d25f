// Package pay creates mock checkout sessions. There is no real payment
// gateway; sessions exist so the purchase flow has the same two-step shape
// a real integration would.
package pay

import "cloudstage/utils"

type CheckoutSession struct {
	SessionID string
	URL       string
	EventID   string
	Amount    float64
}

func CreateCheckoutSession(eventID string, amount float64) (CheckoutSession, error) {
	var s CheckoutSession
	s.SessionID = utils.GenerateRandomString(16)
	s.URL = "/payment-mock?session=" + s.SessionID
	s.EventID = eventID
	s.Amount = amount
	return s, nil
}
