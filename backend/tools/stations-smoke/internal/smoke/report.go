package smoke

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"qrreservation/backend/tools/stations-smoke/internal/models"
)

const (
	successMarker = "✅ SUCCESS - Station created!"
	statusMarker  = "❌ ERROR - Unexpected status code"
	faultMarker   = "❌ ERROR:"
)

var separator = strings.Repeat("-", 60)

func writePreamble(w io.Writer, url, tok string, payload models.StationPayload) {
	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		pretty = []byte(fmt.Sprintf("%+v", payload))
	}
	fmt.Fprintf(w, "Testing POST %s\n", url)
	fmt.Fprintf(w, "Token: %s\n", tok)
	fmt.Fprintf(w, "Payload: %s\n", pretty)
	fmt.Fprintln(w, separator)
}

func writeResult(w io.Writer, res Result) {
	if res.TransportFault() {
		fmt.Fprintf(w, "%s %v\n", faultMarker, res.Err)
		return
	}
	fmt.Fprintf(w, "Status: %d\n", res.StatusCode)
	fmt.Fprintf(w, "Response: %s\n", res.Body)
	if res.Outcome == Succeeded {
		fmt.Fprintf(w, "\n%s\n", successMarker)
		return
	}
	fmt.Fprintf(w, "\n%s\n", statusMarker)
}
