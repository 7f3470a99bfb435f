package catalog

// Facet enumerations backing the filter controls. Each returns distinct
// non-empty values in first-appearance order.

// Categories returns the distinct product category names.
func Categories(products []Product) []string {
	return distinct(products, func(p Product) []string {
		return []string{p.Category.Name}
	})
}

// Sources returns the distinct sales source names across all products.
func Sources(products []Product) []string {
	return distinct(products, func(p Product) []string {
		names := make([]string, 0, len(p.SalesSources))
		for _, s := range p.SalesSources {
			names = append(names, s.Name)
		}
		return names
	})
}

// Themes returns the distinct discussion theme names across all products.
func Themes(products []Product) []string {
	return distinct(products, func(p Product) []string {
		names := make([]string, 0, len(p.ReviewStats.TopThemes))
		for _, t := range p.ReviewStats.TopThemes {
			names = append(names, t.Name)
		}
		return names
	})
}

// Roles returns the distinct user roles in the directory.
func Roles(users []User) []string {
	seen := make(map[string]struct{})
	var roles []string
	for _, u := range users {
		if u.Role == "" {
			continue
		}
		if _, ok := seen[u.Role]; ok {
			continue
		}
		seen[u.Role] = struct{}{}
		roles = append(roles, u.Role)
	}
	return roles
}

func distinct(products []Product, extract func(Product) []string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, p := range products {
		for _, v := range extract(p) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	return values
}
