// Package api serves the tagsheet pipeline over HTTP.
//
// # Routes
//
//	GET  /healthz              liveness and build info
//	GET  /v1/sizes?content=... tag-size catalogue with suggestion flags
//	GET  /v1/papers            supported paper sizes
//	POST /v1/plan              plan a selection, returns placement JSON
//	POST /v1/render/{format}   render a selection (svg, png, pdf, json, xlsx)
//	GET  /metrics              Prometheus metrics, when enabled
//
// Plan and render bodies carry the products plus pipeline options:
//
//	{"products": [{"name": "Tea", "sale_price": 40}], "size_id": 17, "content": ["productName", "salePrice"]}
//
// Errors are JSON objects {"code": "...", "message": "..."}. Validation
// failures map to 400, a tag that does not fit the paper to 422.
package api
