package testdata

// Amounts understood by the fake gateway, following the sandbox convention: amounts
// from 2000.00 to 2999.99 are declined with the whole amount as processor response code.
const (
	ApprovedAmount = "10.00"
	DeclinedAmount = "2001.00"

	DeclinedResponseCode = "2001"
	DeclinedResponseText = "Insufficient Funds"
)

// Test cards as the gateway-side vault stores them
type TestCard struct {
	Token    string
	Last4    string
	CardType string
	Country  string
}

var (
	VisaCard = TestCard{
		Token:    "visa-4111",
		Last4:    "1111",
		CardType: "Visa",
		Country:  "US",
	}

	MasterCard = TestCard{
		Token:    "mc-4444",
		Last4:    "4444",
		CardType: "MasterCard",
		Country:  "GB",
	}
)
