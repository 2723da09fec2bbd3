package services

import "log"

// SMSSender delivers verification codes to phones. Real SMS dispatch is an
// external concern; the server only needs something that accepts the code.
type SMSSender interface {
	Send(phone, code string) error
}

// LogSMSSender writes the code to the server log instead of sending a
// text message, which is what the dev environment does.
type LogSMSSender struct{}

func (LogSMSSender) Send(phone, code string) error {
	log.Printf("Verification code for %s: %s", phone, code)
	return nil
}
