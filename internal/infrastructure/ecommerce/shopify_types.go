package ecommerce

// graphQLRequest is the envelope for an Admin API GraphQL call
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphQLError is one entry of the errors array a GraphQL response may carry
type graphQLError struct {
	Message string `json:"message"`
}

// shopifyPageInfo carries cursor paging state
type shopifyPageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// shopifyMoney is a money amount in the shop's presentment currency
type shopifyMoney struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// shopifyMoneySet wraps presentment-currency money
type shopifyMoneySet struct {
	PresentmentMoney shopifyMoney `json:"presentmentMoney"`
}

// ---------------------------------------------------------------------------
// Orders query
// ---------------------------------------------------------------------------

type shopifyOrderVariant struct {
	ID    string `json:"id"`
	Price string `json:"price"`
}

type shopifyOrderProduct struct {
	ID string `json:"id"`
}

type shopifyOrderLineItem struct {
	Quantity int                 `json:"quantity"`
	Variant  shopifyOrderVariant `json:"variant"`
	Product  shopifyOrderProduct `json:"product"`
}

type shopifyOrderLineItemEdge struct {
	Node shopifyOrderLineItem `json:"node"`
}

type shopifyOrderNode struct {
	ID                     string           `json:"id"`
	CreatedAt              string           `json:"createdAt"`
	Email                  string           `json:"email"`
	DisplayFinancialStatus string           `json:"displayFinancialStatus"`
	TotalDiscountsSet      *shopifyMoneySet `json:"totalDiscountsSet"`
	LineItems              struct {
		Edges []shopifyOrderLineItemEdge `json:"edges"`
	} `json:"lineItems"`
}

type shopifyOrdersConnection struct {
	PageInfo shopifyPageInfo    `json:"pageInfo"`
	Nodes    []shopifyOrderNode `json:"nodes"`
}

type shopifyOrdersResponse struct {
	Data *struct {
		Orders *shopifyOrdersConnection `json:"orders"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// ---------------------------------------------------------------------------
// Products query
// ---------------------------------------------------------------------------

type shopifyProductImage struct {
	Src string `json:"src"`
}

type shopifyProductVariant struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
}

type shopifyProductNode struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Images struct {
		Edges []struct {
			Node shopifyProductImage `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node shopifyProductVariant `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

type shopifyProductsConnection struct {
	PageInfo shopifyPageInfo `json:"pageInfo"`
	Edges    []struct {
		Node shopifyProductNode `json:"node"`
	} `json:"edges"`
}

type shopifyProductsResponse struct {
	Data *struct {
		Products *shopifyProductsConnection `json:"products"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// ---------------------------------------------------------------------------
// Shop query
// ---------------------------------------------------------------------------

type shopifyShopResponse struct {
	Data *struct {
		Shop *struct {
			CurrencyCode string `json:"currencyCode"`
		} `json:"shop"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}
