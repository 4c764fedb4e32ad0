package report

import (
	"fmt"
	"regexp"

	"github.com/ukaji3/wbinspect-go/pkg/wbinspect/models"
)

// staticQuestions is the fixed catalog printed regardless of the data.
var staticQuestions = []string{
	"📈 Sales Performance:",
	"  • What are the total sales by month/quarter?",
	"  • Which products/categories have highest revenue?",
	"  • What's the sales trend over time?",
	"  • Which regions/territories perform best?",
	"",
	"🎯 Customer Analysis:",
	"  • Who are the top customers by revenue?",
	"  • What's the customer acquisition trend?",
	"  • Which customer segments are most profitable?",
	"",
	"📊 Product Analysis:",
	"  • What are the best-selling products?",
	"  • Which products have highest profit margins?",
	"  • What's the product performance comparison?",
	"",
	"💰 Financial Insights:",
	"  • What's the revenue vs profit analysis?",
	"  • How do costs impact profitability?",
	"  • What are the seasonal patterns?",
	"",
	"🔍 Operational Metrics:",
	"  • What's the average order value?",
	"  • How many units sold per transaction?",
	"  • What's the sales conversion rate?",
}

// StaticQuestions returns a copy of the fixed question catalog.
func StaticQuestions() []string {
	return append([]string(nil), staticQuestions...)
}

// NoRolesDetected is printed in data mode when no column role matched.
const NoRolesDetected = "No column roles detected; no data-driven questions to suggest."

// Role is the business meaning guessed for a column.
type Role string

const (
	RoleDate     Role = "date"
	RoleRevenue  Role = "revenue"
	RoleCost     Role = "cost"
	RoleQuantity Role = "quantity"
	RoleRegion   Role = "region"
	RoleCustomer Role = "customer"
	RoleProduct  Role = "product"
)

var (
	datePattern     = regexp.MustCompile(`(?i)date|month|quarter|period|year|week|day`)
	revenuePattern  = regexp.MustCompile(`(?i)revenue|sales|amount|total|price|income|value`)
	costPattern     = regexp.MustCompile(`(?i)cost|expense|profit|margin|discount`)
	quantityPattern = regexp.MustCompile(`(?i)qty|quantity|units|volume|count`)
	regionPattern   = regexp.MustCompile(`(?i)region|territory|country|state|city|market|zone|area|branch`)
	customerPattern = regexp.MustCompile(`(?i)customer|client|account|buyer`)
	productPattern  = regexp.MustCompile(`(?i)product|item|sku|category|brand`)
)

// DetectRoles maps each role to the first column that plays it, scanning
// sheets and columns in order.
func DetectRoles(sheets []*models.SheetSummary) map[Role]string {
	roles := make(map[Role]string)
	assign := func(r Role, name string) {
		if _, ok := roles[r]; !ok {
			roles[r] = name
		}
	}

	for _, s := range sheets {
		for _, c := range s.Columns {
			switch {
			case c.Type == models.TypeDateTime:
				assign(RoleDate, c.Name)
			case c.Type.IsNumeric():
				if revenuePattern.MatchString(c.Name) {
					assign(RoleRevenue, c.Name)
				}
				if costPattern.MatchString(c.Name) {
					assign(RoleCost, c.Name)
				}
				if quantityPattern.MatchString(c.Name) {
					assign(RoleQuantity, c.Name)
				}
			case c.Type.IsCategorical():
				if regionPattern.MatchString(c.Name) {
					assign(RoleRegion, c.Name)
				}
				if customerPattern.MatchString(c.Name) {
					assign(RoleCustomer, c.Name)
				}
				if productPattern.MatchString(c.Name) {
					assign(RoleProduct, c.Name)
				}
			}
			// Text or numeric columns named like dates still count as a time axis.
			if c.Type != models.TypeDateTime && datePattern.MatchString(c.Name) {
				assign(RoleDate, c.Name)
			}
		}
	}
	return roles
}

// SuggestQuestions derives the question catalog from detected column roles.
// Categories without a matching column are left out.
func SuggestQuestions(sheets []*models.SheetSummary) []string {
	roles := DetectRoles(sheets)
	has := func(rs ...Role) bool {
		for _, r := range rs {
			if _, ok := roles[r]; !ok {
				return false
			}
		}
		return true
	}
	date, rev, cost := roles[RoleDate], roles[RoleRevenue], roles[RoleCost]
	qty, region := roles[RoleQuantity], roles[RoleRegion]
	customer, product := roles[RoleCustomer], roles[RoleProduct]

	type category struct {
		title     string
		questions []string
	}
	var cats []category
	add := func(title string, qs ...string) {
		if len(qs) > 0 {
			cats = append(cats, category{title, qs})
		}
	}

	var sales []string
	if has(RoleRevenue, RoleDate) {
		sales = append(sales,
			fmt.Sprintf("What is the total %s by %s?", rev, date),
			fmt.Sprintf("What's the %s trend over %s?", rev, date))
	}
	if has(RoleRevenue, RoleProduct) {
		sales = append(sales, fmt.Sprintf("Which %s values have the highest %s?", product, rev))
	}
	if has(RoleRevenue, RoleRegion) {
		sales = append(sales, fmt.Sprintf("Which %s values perform best on %s?", region, rev))
	}
	add("📈 Sales Performance:", sales...)

	var customers []string
	if has(RoleCustomer, RoleRevenue) {
		customers = append(customers, fmt.Sprintf("Who are the top %s values by %s?", customer, rev))
	}
	if has(RoleCustomer, RoleDate) {
		customers = append(customers, fmt.Sprintf("How does the number of distinct %s values change over %s?", customer, date))
	}
	if has(RoleCustomer) && len(customers) == 0 {
		customers = append(customers, fmt.Sprintf("How are rows distributed across %s values?", customer))
	}
	add("🎯 Customer Analysis:", customers...)

	var products []string
	if has(RoleProduct, RoleQuantity) {
		products = append(products, fmt.Sprintf("Which %s values sell the most %s?", product, qty))
	}
	if has(RoleProduct, RoleCost) {
		products = append(products, fmt.Sprintf("Which %s values have the highest %s?", product, cost))
	}
	if has(RoleProduct) && len(products) == 0 {
		products = append(products, fmt.Sprintf("How are rows distributed across %s values?", product))
	}
	add("📊 Product Analysis:", products...)

	var finance []string
	if has(RoleRevenue, RoleCost) {
		finance = append(finance, fmt.Sprintf("How does %s compare with %s?", rev, cost))
	}
	if has(RoleRevenue, RoleDate) {
		finance = append(finance, fmt.Sprintf("Are there seasonal patterns in %s across %s?", rev, date))
	}
	add("💰 Financial Insights:", finance...)

	var ops []string
	if has(RoleRevenue, RoleQuantity) {
		ops = append(ops, fmt.Sprintf("What is the average %s per unit of %s?", rev, qty))
	}
	if has(RoleQuantity) {
		ops = append(ops, fmt.Sprintf("What is the distribution of %s per row?", qty))
	}
	add("🔍 Operational Metrics:", ops...)

	if len(cats) == 0 {
		return []string{NoRolesDetected}
	}

	var lines []string
	for i, c := range cats {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, c.title)
		for _, q := range c.questions {
			lines = append(lines, "  • "+q)
		}
	}
	return lines
}
