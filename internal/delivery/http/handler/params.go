package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"edoc-portal/pkg/listquery"
	"edoc-portal/pkg/response"

	"github.com/gorilla/mux"
)

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil
}

func listQuery(r *http.Request) listquery.Query {
	q := r.URL.Query()
	return listquery.Query{
		Status: q.Get("status"),
		Text:   q.Get("q"),
	}
}

// writeExport sends v as an indented JSON file named <prefix>-export-<date>.json.
func writeExport(w http.ResponseWriter, prefix string, v interface{}) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		response.InternalServerError(w, "Failed to export data")
		return
	}
	filename := prefix + "-export-" + time.Now().UTC().Format("2006-01-02") + ".json"
	response.Attachment(w, filename, "application/json", body)
}
