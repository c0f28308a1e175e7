package upstream

import (
	"context"
	"net/http"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/models"
)

// ListOrders returns the cash-on-delivery orders placed against the
// sub-admin's restaurant.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.get(ctx, "api/admin/getOrdersByRestaurant", &out); err != nil {
		return nil, fallback(err, "Failed to fetch orders")
	}
	return out, nil
}

// UpdateOrderStatus patches only orderStatus; payment state has its own
// route and the two are confirmed independently.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	payload := map[string]string{"orderStatus": status}
	if err := c.sendJSON(ctx, http.MethodPatch, "api/admin/update-cod-order-status/"+id, payload, nil); err != nil {
		return fallback(err, "Failed to update order status")
	}
	return nil
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, id, status string) error {
	payload := map[string]string{"paymentStatus": status}
	if err := c.sendJSON(ctx, http.MethodPatch, "api/admin/update-cod-payment-status/"+id, payload, nil); err != nil {
		return fallback(err, "Failed to update payment status")
	}
	return nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	if err := c.delete(ctx, "api/orders/delete/"+id); err != nil {
		return fallback(err, "Failed to delete order")
	}
	return nil
}

// AllDashboardCounts fetches the platform-wide counters; the upstream wraps
// them in a data envelope.
func (c *Client) AllDashboardCounts(ctx context.Context) (*models.AllDashboardCounts, error) {
	var out struct {
		Data models.AllDashboardCounts `json:"data"`
	}
	if err := c.get(ctx, "api/admin/adminAllDashboardCount", &out); err != nil {
		return nil, fallback(err, "Failed to fetch dashboard data. Please try again later.")
	}
	return &out.Data, nil
}

// SubDashboardCounts fetches the counters scoped to the signed-in
// sub-admin's restaurant.
func (c *Client) SubDashboardCounts(ctx context.Context) (*models.SubDashboardCounts, error) {
	var out struct {
		Data models.SubDashboardCounts `json:"data"`
	}
	if err := c.get(ctx, "api/admin/adminSubDashboardCount", &out); err != nil {
		return nil, fallback(err, "Failed to fetch dashboard data. Please try again later.")
	}
	return &out.Data, nil
}
