package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Policy tunes the synchronizers.
type Policy struct {
	CartInterval          time.Duration
	ProductsInterval      time.Duration
	OrdersInterval        time.Duration
	NotificationsInterval time.Duration
	MaintenanceInterval   time.Duration
	PingInterval          time.Duration
	FailureThreshold      int
	// RemoveAtOrBelow: позиция удаляется, когда остаток не больше этого значения
	RemoveAtOrBelow int
	// ClampToStock: уменьшать количество до остатка вместо удаления
	ClampToStock bool
}

// DefaultPolicy returns the intervals observed in the storefront.
func DefaultPolicy() Policy {
	return Policy{
		CartInterval:          10 * time.Second,
		ProductsInterval:      30 * time.Second,
		OrdersInterval:        30 * time.Second,
		NotificationsInterval: 15 * time.Second,
		MaintenanceInterval:   5 * time.Second,
		PingInterval:          5 * time.Second,
		FailureThreshold:      3,
		RemoveAtOrBelow:       0,
		ClampToStock:          true,
	}
}

// LoadPolicy reads a TOML policy file on top of base. Unset keys keep base values.
func LoadPolicy(path string, base Policy) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy file: %w", err)
	}

	var raw struct {
		FailureThreshold *int `toml:"failure_threshold"`
		Intervals        struct {
			Cart          string `toml:"cart"`
			Products      string `toml:"products"`
			Orders        string `toml:"orders"`
			Notifications string `toml:"notifications"`
			Maintenance   string `toml:"maintenance"`
			Ping          string `toml:"ping"`
		} `toml:"intervals"`
		Stock struct {
			RemoveAtOrBelow *int  `toml:"remove_at_or_below"`
			Clamp           *bool `toml:"clamp"`
		} `toml:"stock"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Policy{}, fmt.Errorf("parse policy file: %w", err)
	}

	p := base
	intervals := []struct {
		dst  *time.Duration
		name string
		val  string
	}{
		{&p.CartInterval, "cart", raw.Intervals.Cart},
		{&p.ProductsInterval, "products", raw.Intervals.Products},
		{&p.OrdersInterval, "orders", raw.Intervals.Orders},
		{&p.NotificationsInterval, "notifications", raw.Intervals.Notifications},
		{&p.MaintenanceInterval, "maintenance", raw.Intervals.Maintenance},
		{&p.PingInterval, "ping", raw.Intervals.Ping},
	}
	for _, iv := range intervals {
		if strings.TrimSpace(iv.val) == "" {
			continue
		}
		d, err := time.ParseDuration(iv.val)
		if err != nil || d <= 0 {
			return Policy{}, fmt.Errorf("invalid %s interval %q", iv.name, iv.val)
		}
		*iv.dst = d
	}

	if raw.FailureThreshold != nil {
		if *raw.FailureThreshold < 1 {
			return Policy{}, fmt.Errorf("failure_threshold must be at least 1")
		}
		p.FailureThreshold = *raw.FailureThreshold
	}
	if raw.Stock.RemoveAtOrBelow != nil {
		if *raw.Stock.RemoveAtOrBelow < 0 {
			return Policy{}, fmt.Errorf("stock.remove_at_or_below must not be negative")
		}
		p.RemoveAtOrBelow = *raw.Stock.RemoveAtOrBelow
	}
	if raw.Stock.Clamp != nil {
		p.ClampToStock = *raw.Stock.Clamp
	}

	return p, nil
}
