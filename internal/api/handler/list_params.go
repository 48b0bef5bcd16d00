package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/annelie/wax/internal/api/util"
	"github.com/annelie/wax/pkg/result"
)

// parseListFilter reads the page/per_page/query/order parameters shared by
// the list endpoints and validates field names against the allowed sets.
func parseListFilter(c *gin.Context, queryFields, orderFields []string) (util.ListFilter, *result.Error) {
	filter := util.ListFilter{
		Page:    positiveIntQuery(c, "page", 1),
		PerPage: positiveIntQuery(c, "per_page", 25),
	}

	if queryStr := c.Query("query"); queryStr != "" {
		filters, err := util.ParseQueryString(queryStr)
		if err != nil {
			return filter, result.Validation("Invalid query parameter", err.Error())
		}
		if err := util.ValidateFilterFields(filters, queryFields); err != nil {
			return filter, result.Validation("Invalid query parameter", err.Error())
		}
		filter.Filters = filters
	}

	if orderStr := c.Query("order"); orderStr != "" {
		orders, err := util.ParseOrderString(orderStr)
		if err != nil {
			return filter, result.Validation("Invalid order parameter", err.Error())
		}
		if err := util.ValidateOrderFields(orders, orderFields); err != nil {
			return filter, result.Validation("Invalid order parameter", err.Error())
		}
		filter.Order = orders
	}

	return filter, nil
}

// positiveIntQuery falls back to the default when the parameter is absent,
// unparseable or non-positive, so the echoed pagination matches the rows
// actually served.
func positiveIntQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
