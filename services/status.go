package services

// Upstream systems spell the same lifecycle states several ways. These maps
// fold every known spelling into the canonical vocabulary; anything unknown
// falls through to "pending" so an unrecognized state never grants access or
// shows a payment as settled.

// NormalizeEnrollmentStatus maps an upstream inscription status to one of
// pending, accepted, rejected. Total: never fails, defaults to pending.
func NormalizeEnrollmentStatus(raw string) string {
	switch raw {
	case "accepted", "active":
		return "accepted"
	case "rejected", "dropped", "expired":
		return "rejected"
	default:
		return "pending"
	}
}

// NormalizeDonationStatus maps an upstream donation status to one of
// pending, approved, rejected, refunded. Same fail-safe default.
func NormalizeDonationStatus(raw string) string {
	switch raw {
	case "approved", "completed":
		return "approved"
	case "rejected", "cancelled":
		return "rejected"
	case "refunded":
		return "refunded"
	default:
		return "pending"
	}
}
