package order_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// DownloadInvoice godoc
// @Summary Download order invoice PDF
// @Description Generate and download the invoice PDF for one of the session's orders.
// @Tags Storefront - Orders
// @Produce octet-stream
// @Param session_id path string true "Session ID"
// @Param order_id path string true "Order ID"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/orders/{session_id}/{order_id}/invoice [get]
func DownloadInvoice(c *gin.Context) {
	order, ok := fetchSessionOrder(c)
	if !ok {
		return
	}

	pdfBuffer, err := generateInvoicePDF(order)
	if err != nil {
		log.Printf("[order.invoice] PDF generation failed for %s: %v", order.OrderNumber, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[order.invoice] invoice PDF downloaded for order %s", order.OrderNumber)
}

// generateInvoicePDF renders the order as an A4 invoice. Discounted lines
// show their discount next to the product name; the unit price column already
// carries the effective sale price.
func generateInvoicePDF(order models.OrderWithLines) (bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("VELORA", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("hello@velora.fashion", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.CustomerName, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", order.OrderNumber), props.Text{
				Size:  10,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.CustomerEmail, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(order.ShippingAddress, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Description", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	for _, line := range order.Lines {
		line := line
		description := fmt.Sprintf("%s (%s, %s)", line.ProductName, line.Size, line.Color)
		if line.DiscountPercentage > 0 {
			description = fmt.Sprintf("%s - %d%% off", description, line.DiscountPercentage)
		}
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(description, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", line.Quantity), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", line.UnitPrice), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", line.LineTotal), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	summary := []struct {
		label string
		value float64
		bold  bool
	}{
		{"Subtotal", order.Subtotal, false},
		{"Shipping", order.ShippingCost, false},
		{"Total", order.TotalAmount, true},
	}
	for _, row := range summary {
		row := row
		m.Row(5, func() {
			m.Col(8, func() {})
			m.Col(2, func() {
				style := consts.Normal
				if row.bold {
					style = consts.Bold
				}
				m.Text(row.label, props.Text{
					Size:  9,
					Style: style,
					Color: mediumGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				style := consts.Normal
				if row.bold {
					style = consts.Bold
				}
				m.Text(fmt.Sprintf("$%.2f", row.value), props.Text{
					Size:  9,
					Style: style,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(10, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for shopping with Velora.", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	return m.Output()
}
