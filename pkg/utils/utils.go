// Copyright (c) 2021 NETWAYS GmbH
package mocks

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/kennygrant/sanitize"
)

// GetMockData returns the raw fixture with the given name from dir
func GetMockData(dir string, name string) []byte {
	jsonFile, err := os.Open(filepath.Join(dir, sanitize.Name(name)))
	if err != nil {
		pwd, _ := os.Getwd()
		glog.Errorf("Error opening fixture %s in the dir %s: %v", name, pwd, err)
		return nil
	}
	defer jsonFile.Close()
	mockData, _ := ioutil.ReadAll(jsonFile)
	return mockData
}

func serveJSON(body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}

// NewMockServer starts a test server answering the NSX-T API endpoints
// with the given fixture bodies. Callers must Close it.
func NewMockServer(clusterStatus []byte, alarms []byte, capacityUsage []byte) *httptest.Server {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/cluster/status", serveJSON(clusterStatus)).Methods("GET")
	router.HandleFunc("/api/v1/alarms", serveJSON(alarms)).Methods("GET")
	router.HandleFunc("/api/v1/capacity/usage", serveJSON(capacityUsage)).Methods("GET")
	return httptest.NewServer(router)
}
