package benefits

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"meal-orders/internal/domain"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type calculateRequest struct {
	UserID      string  `json:"user_id"`
	OrderAmount float64 `json:"order_amount"`
	MealType    string  `json:"meal_type"`
}

// CalculateSubsidy asks the benefits service how much of the order the
// employer covers. A subsidy is a discount, not a required input, so every
// failure mode degrades to a zero subsidy with a reason instead of an error.
func (c *Client) CalculateSubsidy(ctx context.Context, companyID, userID string, orderAmount float64, mealType string) domain.SubsidyResult {
	payload, _ := json.Marshal(calculateRequest{
		UserID:      userID,
		OrderAmount: orderAmount,
		MealType:    mealType,
	})

	url := fmt.Sprintf("%s/companies/%s/subsidy/calculate", c.baseURL, companyID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return unavailable(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unavailable(fmt.Errorf("benefits returned status %d", resp.StatusCode))
	}

	var result domain.SubsidyResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return unavailable(err)
	}
	if result.SubsidyAmount < 0 {
		result.SubsidyAmount = 0
	}
	return result
}

func unavailable(err error) domain.SubsidyResult {
	log.Printf("Warning: subsidy calculation degraded to zero: %v", err)
	return domain.SubsidyResult{SubsidyAmount: 0, Reason: "benefits service unavailable"}
}
