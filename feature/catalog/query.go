package catalog

import (
	"asset-picker/core/data"
	"asset-picker/core/utils"

	"github.com/gofiber/fiber/v2"
)

// QueryRequest is the JSON form of a window query.
type QueryRequest struct {
	Filter string `json:"filter"`
	Sort   string `json:"sort"`
	Desc   bool   `json:"desc"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

// Query converts the request, capping the limit at pageLimit when one is set.
func (r QueryRequest) Query(pageLimit int) data.Query {
	limit := max(r.Limit, 0)
	if pageLimit > 0 && (limit == 0 || limit > pageLimit) {
		limit = pageLimit
	}
	return data.Query{
		Offset: max(r.Offset, 0),
		Limit:  limit,
		Filter: r.Filter,
		SortBy: r.Sort,
		Desc:   r.Desc,
	}
}

// QueryFromRequest reads filter, sort, desc, offset and limit from the query string.
func QueryFromRequest(c *fiber.Ctx) QueryRequest {
	return QueryRequest{
		Filter: c.Query("filter"),
		Sort:   c.Query("sort"),
		Desc:   utils.ToBool(c.Query("desc")),
		Offset: utils.ToInt(c.Query("offset")),
		Limit:  utils.ToInt(c.Query("limit")),
	}
}
