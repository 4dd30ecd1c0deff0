package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/middleware"
	"github.com/vnkhanh/e-campus-bff/models"
	"github.com/vnkhanh/e-campus-bff/services"
)

// Amounts are minor currency units and must be positive.
type DonationInput struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// CreateDonation opens a donation in pending state. The transition to
// approved/rejected/refunded happens at the payment gateway, outside this
// surface.
func CreateDonation(c *gin.Context) {
	var input DonationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPost, "/donations", middleware.Token(c), input)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	donation, err := models.ParseDonation(res.Body, services.NormalizeDonationStatus)
	if err != nil {
		respondParseFailure(c, "donations", err)
		return
	}
	c.JSON(http.StatusCreated, donation)
}

func MyDonations(c *gin.Context) {
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodGet, "/donations?mine=true", middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	donations, err := models.ParseDonationList(res.Body, services.NormalizeDonationStatus)
	if err != nil {
		respondParseFailure(c, "donations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": donations})
}

// VerifyDonation asks the upstream to re-check the payment and returns the
// donation with its status normalized, whatever spelling came back.
func VerifyDonation(c *gin.Context) {
	res, apiErr := services.Upstream.Forward(c.Request.Context(), http.MethodPost, "/donations/"+c.Param("id")+"/verify", middleware.Token(c), nil)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	donation, err := models.ParseDonation(res.Body, services.NormalizeDonationStatus)
	if err != nil {
		respondParseFailure(c, "donations", err)
		return
	}
	c.JSON(http.StatusOK, donation)
}
