// Copyright (c) 2021 NETWAYS GmbH

package config

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"time"

	"github.com/golang/glog"
)

// RequestTimeout bounds the single API call of one invocation
const RequestTimeout = 10 * time.Second

// GetHTTPSClient builds the http.Client used for all API requests.
//
// The system trust store is loaded explicitly so that verification works
// the same on every platform the plugin is deployed on.
func GetHTTPSClient(insecure bool) *http.Client {
	caCertPool, err := x509.SystemCertPool()
	if err != nil {
		glog.Warningf("Error loading system cert pool, starting with an empty one: %v", err)
		caCertPool = x509.NewCertPool()
	}

	tlsCfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		RootCAs:            caCertPool,
		InsecureSkipVerify: insecure,
	}
	if insecure {
		glog.Warning("TLS certificate verification is disabled. Be careful with this option, please")
	}

	tr := &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: tlsCfg,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   RequestTimeout,
	}
}
