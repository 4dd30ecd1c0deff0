package models

import "encoding/json"

type DonationStatus string

const (
	DonationPending  DonationStatus = "pending"
	DonationApproved DonationStatus = "approved"
	DonationRejected DonationStatus = "rejected"
	DonationRefunded DonationStatus = "refunded"
)

// Donation amounts are positive integers in minor currency units.
type Donation struct {
	ID         string         `json:"id"`
	Amount     int64          `json:"amount"`
	Status     DonationStatus `json:"status"`
	PaymentRef string         `json:"payment_ref"`
}

type rawDonation struct {
	ID         upstreamID `json:"id"`
	Amount     int64      `json:"amount"`
	Status     string     `json:"status"`
	PaymentRef string     `json:"externalPaymentRef"`
	PaymentID  string     `json:"payment_id"`
}

func ParseDonation(data []byte, normalize statusNormalizer) (Donation, error) {
	var raw rawDonation
	if err := json.Unmarshal(data, &raw); err != nil {
		return Donation{}, err
	}
	return raw.toDonation(normalize), nil
}

func ParseDonationList(data []byte, normalize statusNormalizer) ([]Donation, error) {
	var raws []rawDonation
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	out := make([]Donation, 0, len(raws))
	for _, raw := range raws {
		out = append(out, raw.toDonation(normalize))
	}
	return out, nil
}

func (r rawDonation) toDonation(normalize statusNormalizer) Donation {
	return Donation{
		ID:         r.ID.String(),
		Amount:     r.Amount,
		Status:     DonationStatus(normalize(r.Status)),
		PaymentRef: firstNonEmpty(r.PaymentRef, r.PaymentID),
	}
}
