package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"exposure/internal/core/policy"
	phttp "exposure/internal/platform/net/http"
	"exposure/internal/platform/testkit"
	"exposure/internal/services/datasets/repo"
	dssvc "exposure/internal/services/datasets/service"
	expsvc "exposure/internal/services/explorer/service"
)

const sampleCSV = "Policy_Number,UY,LOB,Policy_Type,Business_ID,Annual_Premium,Limit_Per_Occurrence,Share\n" +
	"P-1,2023,GL,Primary,T-1,100000,2000000,0.25\n" +
	"P-2,2022,Auto,XS,T-2,50000,1000000,1\n"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := repo.NewMemory()
	ds := dssvc.New(store, dssvc.Options{Presence: policy.RequireCore})
	exp := expsvc.New(ds)

	mux := chi.NewMux()
	r := phttp.AdaptChi(mux)
	r.Route("/datasets", func(rr phttp.Router) {
		Register(rr, ds, exp)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *stdhttp.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func uploadSample(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "sample.csv")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := io.WriteString(fw, sampleCSV); err != nil {
		t.Fatalf("write part: %v", err)
	}
	mw.Close()

	resp, err := stdhttp.Post(srv.URL+"/datasets/", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if resp.StatusCode != stdhttp.StatusCreated {
		t.Fatalf("upload status = %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	var meta struct {
		ID   string `json:"id"`
		Rows int    `json:"rows"`
	}
	if err := json.Unmarshal(env.Data, &meta); err != nil {
		t.Fatalf("decode meta: %v", err)
	}
	if meta.ID == "" || meta.Rows != 2 {
		t.Fatalf("meta = %+v", meta)
	}
	return meta.ID
}

func TestUploadAndGet(t *testing.T) {
	srv := newTestServer(t)
	id := uploadSample(t, srv)

	resp, err := stdhttp.Get(srv.URL + "/datasets/" + id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	decodeEnvelope(t, resp)
}

func TestGetUnknownDataset(t *testing.T) {
	srv := newTestServer(t)
	resp, err := stdhttp.Get(srv.URL + "/datasets/nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.StatusCode != stdhttp.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	if env.Error == "" {
		t.Fatalf("expected error message in envelope")
	}
}

func TestQueryEndpoint(t *testing.T) {
	srv := newTestServer(t)
	id := uploadSample(t, srv)

	body := `{"filters":{"LOB":["GL"]}}`
	resp, err := stdhttp.Post(srv.URL+"/datasets/"+id+"/query", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	var out struct {
		Matched int `json:"matched"`
		Summary struct {
			Policies int `json:"policies"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if out.Matched != 1 || out.Summary.Policies != 1 {
		t.Fatalf("result = %+v", out)
	}
}

func TestExportEndpoint(t *testing.T) {
	srv := newTestServer(t)
	id := uploadSample(t, srv)

	resp, err := stdhttp.Post(srv.URL+"/datasets/"+id+"/export", "application/json", strings.NewReader(`{"format":"csv"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "Filtered_Policies.csv") {
		t.Fatalf("content disposition = %q", cd)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	testkit.MustContain(t, string(data), "Policy_Number")
	testkit.MustContain(t, string(data), "P-1")
}

func TestDropEndpoint(t *testing.T) {
	srv := newTestServer(t)
	id := uploadSample(t, srv)

	req, err := stdhttp.NewRequest(stdhttp.MethodDelete, srv.URL+"/datasets/"+id, nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp, err := stdhttp.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusNoContent {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}

	check, err := stdhttp.Get(srv.URL + "/datasets/" + id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	check.Body.Close()
	if check.StatusCode != stdhttp.StatusNotFound {
		t.Fatalf("get after delete = %d", check.StatusCode)
	}
}
