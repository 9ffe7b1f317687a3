package order

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Manifest renders the tab-separated order sheet for a print shop.
func Manifest(items []Item) string {
	var b strings.Builder
	b.WriteString("Filename\tQuantity\tMaterial\tLaminate\tDimensions\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s\t%d\t%s\t%s\t%.1f x %.1f \"\n",
			item.Name, item.Quantity, item.Material, item.Laminate,
			item.SizeInches, item.SizeInches)
	}
	return b.String()
}

// Summary renders order totals: production cost from the price table,
// resale value from per-design resale prices, and the minimum number of
// stickers to sell to cover the production cost. Designs whose size has
// no price table entry cost zero.
func Summary(items []Item, prices *PriceTable) string {
	quantities := make([]float64, len(items))
	unitCosts := make([]float64, len(items))
	resalePrices := make([]float64, len(items))
	for i, item := range items {
		quantities[i] = float64(item.Quantity)
		unitCosts[i] = prices.UnitPrice(item.SizeInches)
		resalePrices[i] = item.ResalePrice
	}

	totalQuantity := floats.Sum(quantities)
	totalCost := floats.Dot(unitCosts, quantities)
	totalResale := floats.Dot(resalePrices, quantities)

	minSellAmount := 0
	if totalQuantity > 0 {
		if perSticker := totalResale / totalQuantity; perSticker > 0 {
			minSellAmount = int(totalCost/perSticker) + 1
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total Designs: %d\n", len(items))
	fmt.Fprintf(&b, "Total Quantity: %d\n", int(totalQuantity))
	fmt.Fprintf(&b, "Total Cost: $%.2f\n", totalCost)
	fmt.Fprintf(&b, "Minimum Sell Amount: %d\n", minSellAmount)
	fmt.Fprintf(&b, "Total Resale Value: $%.2f\n", totalResale)
	fmt.Fprintf(&b, "Potential Profit: $%.2f\n", totalResale-totalCost)
	return b.String()
}
