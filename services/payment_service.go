package services

import (
	"fmt"
	"time"

	"github.com/MuhammadAsgharramzan/MechaniXpress/utils"
	"github.com/sirupsen/logrus"
)

// PaymentService mocks the payment gateway. A production build would call the
// real provider API here.
type PaymentService struct{}

func NewPaymentService() *PaymentService {
	return &PaymentService{}
}

type PaymentInitiation struct {
	TransactionID string  `json:"transactionId"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Message       string  `json:"message"`
}

// InitiatePayment pretends to start a mobile-wallet payment for a booking.
func (p *PaymentService) InitiatePayment(amount float64, bookingNumber, mobileNumber string) PaymentInitiation {
	txnID := fmt.Sprintf("txn_%d_%s", time.Now().UnixMilli(), utils.GenerateRandomString(8))
	logrus.WithFields(logrus.Fields{
		"amount":        amount,
		"bookingNumber": bookingNumber,
		"transactionId": txnID,
	}).Info("mock payment initiated")

	return PaymentInitiation{
		TransactionID: txnID,
		Status:        "PENDING",
		Amount:        amount,
		Message:       "Payment initiated. Please authorize on your mobile.",
	}
}

// VerifyPayment always reports success; the gateway is mocked.
func (p *PaymentService) VerifyPayment(transactionID string) PaymentInitiation {
	logrus.WithField("transactionId", transactionID).Info("mock payment verified")
	return PaymentInitiation{
		TransactionID: transactionID,
		Status:        "PAID",
		Message:       "Payment verified.",
	}
}
