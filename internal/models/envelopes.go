package models

// The list endpoints disagree on envelope shape; each is decoded into its
// own struct and converted to a Page.

// FoodItemList is the body of /food-items/getallitems.
type FoodItemList struct {
	Items       []FoodItem `json:"items"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
	TotalItems  int        `json:"totalItems"`
	Count       int        `json:"count"`
}

// Page converts the envelope.
func (l FoodItemList) Page() Page[FoodItem] {
	total := l.TotalItems
	if total == 0 {
		total = l.Count
	}
	return Page[FoodItem]{
		Items: nonNil(l.Items),
		Info:  PageInfo{CurrentPage: l.CurrentPage, TotalPages: l.TotalPages, TotalItems: total}.Normalize(),
	}
}

// OrderList is the body of /orders/getall.
type OrderList struct {
	Orders      []Order `json:"orders"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
	TotalOrders int     `json:"totalOrders"`
}

// Page converts the envelope.
func (l OrderList) Page() Page[Order] {
	return Page[Order]{
		Items: nonNil(l.Orders),
		Info:  PageInfo{CurrentPage: l.CurrentPage, TotalPages: l.TotalPages, TotalItems: l.TotalOrders}.Normalize(),
	}
}

// OfferList is the body of /offer.
type OfferList struct {
	Offers      []Offer `json:"offers"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
	TotalOffers int     `json:"totalOffers"`
}

// Page converts the envelope.
func (l OfferList) Page() Page[Offer] {
	return Page[Offer]{
		Items: nonNil(l.Offers),
		Info:  PageInfo{CurrentPage: l.CurrentPage, TotalPages: l.TotalPages, TotalItems: l.TotalOffers}.Normalize(),
	}
}

// CategoryList is the body of /categories. Older deployments omit paging fields.
type CategoryList struct {
	Categories      []Category `json:"categories"`
	CurrentPage     int        `json:"currentPage"`
	TotalPages      int        `json:"totalPages"`
	TotalCategories int        `json:"totalCategories"`
}

// Page converts the envelope.
func (l CategoryList) Page() Page[Category] {
	total := l.TotalCategories
	if total == 0 {
		total = len(l.Categories)
	}
	return Page[Category]{
		Items: nonNil(l.Categories),
		Info:  PageInfo{CurrentPage: l.CurrentPage, TotalPages: l.TotalPages, TotalItems: total}.Normalize(),
	}
}

// BannerList is the body of /banners/getall.
type BannerList struct {
	Data        []Banner `json:"data"`
	CurrentPage int      `json:"currentPage"`
	TotalPages  int      `json:"totalPages"`
	Total       int      `json:"total"`
}

// Page converts the envelope.
func (l BannerList) Page() Page[Banner] {
	total := l.Total
	if total == 0 {
		total = len(l.Data)
	}
	return Page[Banner]{
		Items: nonNil(l.Data),
		Info:  PageInfo{CurrentPage: l.CurrentPage, TotalPages: l.TotalPages, TotalItems: total}.Normalize(),
	}
}

// ContactList is the body of /contact.
type ContactList struct {
	Data       []Contact `json:"data"`
	Pagination struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
		Total int `json:"total"`
		Pages int `json:"pages"`
	} `json:"pagination"`
}

// Page converts the envelope.
func (l ContactList) Page() Page[Contact] {
	return Page[Contact]{
		Items: nonNil(l.Data),
		Info:  PageInfo{CurrentPage: l.Pagination.Page, TotalPages: l.Pagination.Pages, TotalItems: l.Pagination.Total}.Normalize(),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
