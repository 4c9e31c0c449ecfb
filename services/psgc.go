package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

var psgcContext = context.Background()

const psgcCacheTTL = 24 * time.Hour

// PSGCRecord is the subset of a PSGC registry entry this system uses.
type PSGCRecord struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	CityCode string `json:"cityCode"`
}

// PSGCClient reads city/barangay records from the external PSGC
// registry with a Redis read-through cache. Registry data changes
// rarely, so staleness within the TTL is acceptable.
type PSGCClient struct {
	baseURL string
	http    *http.Client
	cache   *redis.Client
}

// NewPSGCClient creates a client against the registry at PSGC_API_URL
// (or the public mirror when unset). cache may be nil to bypass
// caching.
func NewPSGCClient(cache *redis.Client) *PSGCClient {
	baseURL := os.Getenv("PSGC_API_URL")
	if baseURL == "" {
		baseURL = "https://psgc.gitlab.io/api"
	}
	return &PSGCClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
	}
}

// CityName resolves a city/municipality display name by PSGC code.
func (c *PSGCClient) CityName(code string) (string, error) {
	record, err := c.fetchRecord("psgc:city:"+code, fmt.Sprintf("%s/cities-municipalities/%s/", c.baseURL, code))
	if err != nil {
		return "", err
	}
	return record.Name, nil
}

// BarangayName resolves a barangay display name by PSGC code.
func (c *PSGCClient) BarangayName(code string) (string, error) {
	record, err := c.fetchRecord("psgc:barangay:"+code, fmt.Sprintf("%s/barangays/%s/", c.baseURL, code))
	if err != nil {
		return "", err
	}
	return record.Name, nil
}

// CityBarangays lists the barangays of a city/municipality.
func (c *PSGCClient) CityBarangays(cityCode string) ([]PSGCRecord, error) {
	url := fmt.Sprintf("%s/cities-municipalities/%s/barangays/", c.baseURL, cityCode)

	cacheKey := "psgc:city-barangays:" + cityCode
	if c.cache != nil {
		if cached, err := c.cache.Get(psgcContext, cacheKey).Result(); err == nil {
			var records []PSGCRecord
			if err := json.Unmarshal([]byte(cached), &records); err == nil {
				return records, nil
			}
		}
	}

	var records []PSGCRecord
	if err := c.getJSON(url, &records); err != nil {
		return nil, err
	}
	for i := range records {
		records[i].CityCode = cityCode
	}

	if c.cache != nil {
		if encoded, err := json.Marshal(records); err == nil {
			c.cache.Set(psgcContext, cacheKey, string(encoded), psgcCacheTTL)
		}
	}
	return records, nil
}

// Cities lists all cities/municipalities in the registry.
func (c *PSGCClient) Cities() ([]PSGCRecord, error) {
	var records []PSGCRecord
	if err := c.getJSON(c.baseURL+"/cities-municipalities/", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *PSGCClient) fetchRecord(cacheKey, url string) (*PSGCRecord, error) {
	if c.cache != nil {
		if cached, err := c.cache.Get(psgcContext, cacheKey).Result(); err == nil {
			var record PSGCRecord
			if err := json.Unmarshal([]byte(cached), &record); err == nil {
				return &record, nil
			}
		}
	}

	var record PSGCRecord
	if err := c.getJSON(url, &record); err != nil {
		return nil, err
	}

	if c.cache != nil {
		if encoded, err := json.Marshal(record); err == nil {
			c.cache.Set(psgcContext, cacheKey, string(encoded), psgcCacheTTL)
		}
	}
	return &record, nil
}

func (c *PSGCClient) getJSON(url string, out interface{}) error {
	resp, err := c.http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("PSGC registry returned %d for %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
