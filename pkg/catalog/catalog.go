// Package catalog loads dispersion records in the refractiveindex.info
// database format, either from raw bytes or over HTTP with caching.
package catalog

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"
	"gonum.org/v1/gonum/interp"
	"gopkg.in/yaml.v3"

	"github.com/edp1096/toy-optics/pkg/dispersion"
	"github.com/edp1096/toy-optics/pkg/material"
)

const defaultBaseURL = "https://refractiveindex.info/database/data"

// record carries the DATA blocks of a catalog page; the decoder drops
// the other top level keys. Numeric fields arrive as space separated
// strings.
type record struct {
	Data []dataBlock `yaml:"DATA"`
}

type dataBlock struct {
	Type         string `yaml:"type"`
	Range        string `yaml:"wavelength_range"`
	Coefficients string `yaml:"coefficients"`
	Data         string `yaml:"data"`
}

// Client fetches catalog pages over HTTP and caches the materials built
// from them, keyed by page path.
type Client struct {
	baseURL string
	httpc   *http.Client
	ttl     time.Duration
	cache   *cache.Cache
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithTTL sets how long built materials stay cached. Zero caches
// forever.
func WithTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpc:   http.DefaultClient,
		ttl:     time.Hour,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = cache.New(c.ttl, 2*c.ttl)
	return c
}

// Material fetches the record at page, relative to the base URL, and
// builds a material from it. Repeat lookups inside the TTL are served
// from cache without touching the network.
func (c *Client) Material(ctx context.Context, page string) (*dispersion.Material, error) {
	if v, found := c.cache.Get(page); found {
		return v.(*dispersion.Material), nil
	}

	url := c.baseURL + "/" + strings.TrimPrefix(page, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog request %s: %v", page, err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch %s: %v", page, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch %s: %s", page, resp.Status)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch %s: %v", page, err)
	}

	m, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	c.cache.Set(page, m, cache.DefaultExpiration)
	return m, nil
}

// Parse builds a material from a raw catalog record. The first DATA
// block with a supported dispersion type wins; absorption only blocks
// are skipped. Supported types are "formula 1", "formula 2",
// "tabulated n" and "tabulated nk" (k values are dropped).
func Parse(raw []byte) (*dispersion.Material, error) {
	var rec record
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("catalog yaml: %v", err)
	}

	for _, block := range rec.Data {
		switch block.Type {
		case "formula 1":
			return formulaMaterial(block, true)
		case "formula 2":
			return formulaMaterial(block, false)
		case "tabulated n", "tabulated nk":
			return tabulatedMaterial(block)
		}
	}
	return nil, &material.ConfigError{Material: "catalog", Field: "type", Value: dataTypes(rec.Data)}
}

func dataTypes(blocks []dataBlock) string {
	if len(blocks) == 0 {
		return "no data blocks"
	}
	types := make([]string, len(blocks))
	for i, b := range blocks {
		types[i] = b.Type
	}
	return strings.Join(types, ", ")
}

// sellmeierSource evaluates a Sellmeier expansion in um. Band positions
// are stored already squared where the formula calls for it, so both
// catalog formulas share one evaluation.
type sellmeierSource struct {
	c0    float64
	terms [][2]float64 // B, C pairs with C in um^2
}

func (s sellmeierSource) Permittivity(nm float64) float64 {
	um := nm / 1e3
	l2 := um * um
	eps := 1 + s.c0
	for _, term := range s.terms {
		eps += term[0] * l2 / (l2 - term[1])
	}
	return eps
}

func formulaMaterial(block dataBlock, squared bool) (*dispersion.Material, error) {
	coeffs, err := parseFloats(block.Coefficients)
	if err != nil || len(coeffs) == 0 || len(coeffs)%2 == 0 {
		return nil, &material.ConfigError{Material: "catalog", Field: "coefficients", Value: block.Coefficients}
	}

	src := sellmeierSource{c0: coeffs[0]}
	for i := 1; i < len(coeffs); i += 2 {
		c := coeffs[i+1]
		if squared {
			c = c * c
		}
		src.terms = append(src.terms, [2]float64{coeffs[i], c})
	}

	lo, hi, err := parseRange(block.Range)
	if err != nil {
		return nil, err
	}
	return dispersion.New(src, lo, hi), nil
}

// parseRange converts a "min max" pair in um to bounds in nm.
func parseRange(s string) (float64, float64, error) {
	vals, err := parseFloats(s)
	if err != nil || len(vals) != 2 || !(0 < vals[0] && vals[0] < vals[1]) {
		return 0, 0, &material.ConfigError{Material: "catalog", Field: "wavelength_range", Value: s}
	}
	return vals[0] * 1e3, vals[1] * 1e3, nil
}

// tableIndexSource interpolates a tabulated index over wavelength.
type tableIndexSource struct {
	fn interp.PiecewiseLinear
}

func (s tableIndexSource) Permittivity(nm float64) float64 {
	n := s.fn.Predict(nm)
	return n * n
}

func tabulatedMaterial(block dataBlock) (*dispersion.Material, error) {
	var wls, ns []float64
	for _, line := range strings.Split(block.Data, "\n") {
		row, err := parseFloats(line)
		if err != nil || len(row) == 1 {
			return nil, &material.ConfigError{Material: "catalog", Field: "data", Value: line}
		}
		if len(row) == 0 {
			continue
		}
		wls = append(wls, row[0]*1e3) // um -> nm
		ns = append(ns, row[1])
	}
	if len(wls) < 2 {
		return nil, &material.ConfigError{Material: "catalog", Field: "data", Value: fmt.Sprintf("%d rows", len(wls))}
	}
	if wls[0] <= 0 {
		return nil, &material.ConfigError{Material: "catalog", Field: "data", Value: "wavelengths not positive"}
	}
	for i := 1; i < len(wls); i++ {
		if wls[i] <= wls[i-1] {
			return nil, &material.ConfigError{Material: "catalog", Field: "data", Value: "wavelengths not strictly increasing"}
		}
	}

	var src tableIndexSource
	if err := src.fn.Fit(wls, ns); err != nil {
		return nil, fmt.Errorf("catalog table: %v", err)
	}
	return dispersion.New(src, wls[0], wls[len(wls)-1]), nil
}

// parseFloats splits a space separated list of numbers. Records come
// from outside the process; inf and nan tokens are parse errors.
func parseFloats(s string) ([]float64, error) {
	fields := strings.Fields(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("non-finite value %q", f)
		}
		out[i] = v
	}
	return out, nil
}
