// Package network provides the outbound HTTP transport used by the source adapters.
//
// The browser client implements TLS fingerprint emulation via
// refraction-networking/utls, mimicking Chrome's Client Hello signature. This
// is required for catalogs fronted by anti-bot challenges (Cloudflare,
// DDoS-Guard) that reject the standard Go TLS stack.
//
// Protocol negotiation: requests first go through an HTTP/2 transport whose
// TLS dial advertises both h2 and http/1.1 (natural Chrome behavior). If the
// h2 attempt fails, the request transparently falls back to an HTTP/1.1
// transport that forces http/1.1 during ALPN.
package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/anisan-cli/anisan-sources/constant"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const handshakeTimeout = 30 * time.Second

// NewBrowserClient returns a Getter whose TLS layer mimics Chrome 120.
func NewBrowserClient() Getter {
	return &client{resty: newResty(&browserTransport{})}
}

// browserTransport routes requests through the spoofed h2 transport,
// falling back to the spoofed h1 transport when h2 negotiation fails.
type browserTransport struct{}

func (browserTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	}
	if req.Header.Get("Accept-Language") == "" {
		req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := getH2Transport().RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	// Only GET requests flow through here, so the body needs no rewind.
	resp, err = h1Transport.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

var (
	h2Transport     *http2.Transport
	h2TransportOnce sync.Once
)

func getH2Transport() *http2.Transport {
	h2TransportOnce.Do(func() {
		h2Transport = &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialTLS(ctx, network, addr)
			},
		}
	})
	return h2Transport
}

var h1Transport = &http.Transport{
	DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialTLSH1(ctx, network, addr)
	},
}

// dialTLS creates a TLS connection mimicking Chrome 120's fingerprint,
// advertising both h2 and http/1.1.
func dialTLS(ctx context.Context, network, addr string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: handshakeTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}

// dialTLSH1 creates a TLS connection forcing http/1.1 only, for the fallback path.
func dialTLSH1(ctx context.Context, network, addr string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: handshakeTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: []string{"http/1.1"},
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
