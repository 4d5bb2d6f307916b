package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/Velora-Fashion/velora-storefront-backend/models"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client. Returns nil when no API key is
// configured; order confirmation is best-effort and checkout must not depend
// on it.
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "orders@velora.fashion" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// SendOrderConfirmationEmail emails the customer a summary of their order.
func SendOrderConfirmationEmail(order models.OrderWithLines) error {
	client := NewResendClient()
	if client == nil {
		log.Printf("[resend] RESEND_API_KEY not set, skipping confirmation for %s", order.OrderNumber)
		return nil
	}
	return client.sendOrderConfirmation(order)
}

func (r *ResendClient) sendOrderConfirmation(order models.OrderWithLines) error {
	htmlBody := buildOrderConfirmationHTML(order)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      order.CustomerEmail,
		"subject": fmt.Sprintf("Your Velora order %s is confirmed", order.OrderNumber),
		"html":    htmlBody,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] send failed with status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend returned status %d", resp.StatusCode)
	}

	log.Printf("[resend] confirmation sent for order %s to %s", order.OrderNumber, order.CustomerEmail)
	return nil
}

// buildOrderConfirmationHTML renders the confirmation email with inline
// styles, same approach as the invoice email.
func buildOrderConfirmationHTML(order models.OrderWithLines) string {
	var itemsRows strings.Builder
	for _, line := range order.Lines {
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s (%s, %s)</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">$%.2f</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">$%.2f</td>
      </tr>
    `, line.ProductName, line.Size, line.Color, line.Quantity, line.UnitPrice, line.LineTotal))
	}

	shippingRow := fmt.Sprintf(`
      <tr>
        <td colspan="3" style="padding: 4px 0; font-size: 13px; text-align: right; color: #79776d;">Shipping</td>
        <td style="padding: 4px 0; font-size: 13px; text-align: right; color: #262622;">$%.2f</td>
      </tr>`, order.ShippingCost)
	if order.ShippingCost == 0 {
		shippingRow = `
      <tr>
        <td colspan="3" style="padding: 4px 0; font-size: 13px; text-align: right; color: #79776d;">Shipping</td>
        <td style="padding: 4px 0; font-size: 13px; text-align: right; color: #262622;">Free</td>
      </tr>`
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
  <body style="margin: 0; padding: 0; background-color: #f6f5f2; font-family: Arial, sans-serif;">
    <div style="max-width: 560px; margin: 0 auto; padding: 32px 24px; background-color: #ffffff;">
      <h1 style="font-size: 20px; color: #262622; margin-bottom: 4px;">Thanks for your order, %s!</h1>
      <p style="font-size: 14px; color: #79776d; margin-top: 0;">
        Order <strong>%s</strong> placed on %s. We'll let you know when it ships to:
      </p>
      <p style="font-size: 14px; color: #262622;">%s</p>
      <table style="width: 100%%; border-collapse: collapse; margin-top: 16px;">
        <thead>
          <tr style="border-bottom: 1px solid #e5e3dc;">
            <th style="padding: 8px 0; font-size: 12px; text-align: left; color: #79776d;">Item</th>
            <th style="padding: 8px 0; font-size: 12px; text-align: right; color: #79776d;">Qty</th>
            <th style="padding: 8px 0; font-size: 12px; text-align: right; color: #79776d;">Price</th>
            <th style="padding: 8px 0; font-size: 12px; text-align: right; color: #79776d;">Total</th>
          </tr>
        </thead>
        <tbody>
          %s
          <tr style="border-top: 1px solid #e5e3dc;">
            <td colspan="3" style="padding: 4px 0; font-size: 13px; text-align: right; color: #79776d;">Subtotal</td>
            <td style="padding: 4px 0; font-size: 13px; text-align: right; color: #262622;">$%.2f</td>
          </tr>
          %s
          <tr>
            <td colspan="3" style="padding: 8px 0; font-size: 15px; text-align: right; font-weight: 700; color: #262622;">Total</td>
            <td style="padding: 8px 0; font-size: 15px; text-align: right; font-weight: 700; color: #262622;">$%.2f</td>
          </tr>
        </tbody>
      </table>
      <p style="font-size: 12px; color: #79776d; margin-top: 24px;">
        Velora &middot; hello@velora.fashion
      </p>
    </div>
  </body>
</html>`,
		order.CustomerName,
		order.OrderNumber,
		order.CreatedAt.Format("Jan 02, 2006"),
		order.ShippingAddress,
		itemsRows.String(),
		order.Subtotal,
		shippingRow,
		order.TotalAmount,
	)
}
