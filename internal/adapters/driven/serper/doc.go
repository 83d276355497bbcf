// Package serper provides driven adapters backed by the Serper API:
// a SearchProvider over the search endpoint and a PageScraper over the
// scrape endpoint. Both share one client with a common API key, timeout,
// and rate limiter.
package serper
