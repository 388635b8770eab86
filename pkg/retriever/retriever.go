// Copyright (c) 2021 NETWAYS GmbH

package retriever

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/golang/glog"

	"github.com/NETWAYS/check_vmware_nsxt/pkg/config"
	"github.com/NETWAYS/check_vmware_nsxt/pkg/types"
)

// APIPrefix is the common path of all NSX-T v1 API endpoints
const APIPrefix = "/api/v1/"

// Retriever is a simple API client for VMware NSX-T
type Retriever struct {
	API      string
	Username string
	Password string
	Client   *http.Client
}

// NewRetriever ...
func NewRetriever(api string, username string, password string, client *http.Client) *Retriever {
	if client == nil {
		client = &http.Client{}
	}
	return &Retriever{
		API:      strings.TrimRight(api, "/"),
		Username: username,
		Password: password,
		Client:   client,
	}
}

// GetRequest - Creates a GET request for an endpoint below the API prefix
func (r *Retriever) GetRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	requestURL := r.API + APIPrefix + endpoint
	glog.V(2).Infof("Creating request for URL %s", requestURL)

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		glog.Warningf("Error creating HttpRequest with endpoint %s, %v", requestURL, err)
		return nil, err
	}
	req.SetBasicAuth(r.Username, r.Password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "check_vmware_nsxt/"+config.Version)
	return req, nil
}

// call - Makes the HTTP call and decodes the JSON body into the given document
func (r *Retriever) call(req *http.Request, document interface{}) error {
	glog.V(2).Infof("Starting API GET request for %s", req.URL)

	res, err := r.Client.Do(req)
	if err != nil {
		glog.Warningf("Error sending HttpRequest for %s, %v", req.URL, err)
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		glog.Warningf("Unsuccessful response from %s - response code %d", req.URL, res.StatusCode)
		return fmt.Errorf("Request to %s was not successful: %d", req.URL, res.StatusCode)
	}

	data, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("Could not read API response: %v", err)
	}
	if err := json.Unmarshal(data, document); err != nil {
		glog.Errorf("Error unmarshalling response from %s: %v", req.URL, err)
		return fmt.Errorf("Could not decode API JSON: %v", err)
	}
	return nil
}

// GetClusterStatus - GET and decode the cluster status document
func (r *Retriever) GetClusterStatus(ctx context.Context) (*types.ClusterStatusDocument, error) {
	req, err := r.GetRequest(ctx, "cluster/status")
	if err != nil {
		return nil, err
	}
	var document types.ClusterStatusDocument
	if err := r.call(req, &document); err != nil {
		return nil, err
	}
	return &document, nil
}

// GetAlarms - GET and decode the first page of open alarms, newest first
func (r *Retriever) GetAlarms(ctx context.Context) ([]types.Alarm, error) {
	req, err := r.GetRequest(ctx, "alarms?page_size=100&status=OPEN&sort_ascending=false")
	if err != nil {
		return nil, err
	}
	var document types.AlarmsDocument
	if err := r.call(req, &document); err != nil {
		return nil, err
	}
	return document.Results, nil
}

// GetCapacityUsage - GET and decode the capacity usage document
func (r *Retriever) GetCapacityUsage(ctx context.Context) (*types.CapacityUsageDocument, error) {
	req, err := r.GetRequest(ctx, "capacity/usage")
	if err != nil {
		return nil, err
	}
	var document types.CapacityUsageDocument
	if err := r.call(req, &document); err != nil {
		return nil, err
	}
	return &document, nil
}
