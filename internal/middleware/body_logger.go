package middleware

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

const redacted = "[REDACTED]"

var sensitiveFields = []string{"partnerpassword", "sig"}

// BodyLogger logs the inbound and outbound JSON bodies with credentials
// masked.
func BodyLogger() echo.MiddlewareFunc {
	return echomiddleware.BodyDump(func(c echo.Context, reqBody, resBody []byte) {
		log.Ctx(c.Request().Context()).Info().
			RawJSON("request", RedactBody(reqBody)).
			RawJSON("response", RedactBody(resBody)).
			Msg("Request body")
	})
}

// RedactBody masks sensitive top-level fields. Bodies that are not JSON
// objects are replaced by a JSON string noting their size.
func RedactBody(body []byte) []byte {
	if len(body) == 0 {
		return []byte(`null`)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		out, _ := json.Marshal(map[string]int{"unparsed_bytes": len(body)})
		return out
	}

	for _, name := range sensitiveFields {
		if _, ok := fields[name]; ok {
			fields[name] = json.RawMessage(`"` + redacted + `"`)
		}
	}

	out, err := json.Marshal(fields)
	if err != nil {
		return []byte(`null`)
	}

	return out
}
