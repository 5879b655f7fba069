package statsbomb

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/richard-senior/pitchplot/internal/logger"
	"github.com/richard-senior/pitchplot/pkg/transport"
)

///////////////////////////////////////////////////////////////////////////////
/// DATASOURCE
///////////////////////////////////////////////////////////////////////////////

// Datasource fetches StatsBomb open data over http, caching every
// download on disk so repeat loads never hit the network
type Datasource struct {
	EventURL       string
	MatchURL       string
	LineupURL      string
	CompetitionURL string
	RepositoryURL  string
}

var (
	datasourceInstance *Datasource
	datasourceOnce     sync.Once
)

// GetDatasourceInstance returns the singleton instance of Datasource
func GetDatasourceInstance() *Datasource {
	datasourceOnce.Do(func() {
		datasourceInstance = &Datasource{
			EventURL:       Config.EventURL,
			MatchURL:       Config.MatchURL,
			LineupURL:      Config.LineupURL,
			CompetitionURL: Config.CompetitionURL,
			RepositoryURL:  Config.RepositoryURL,
		}
		if err := os.MkdirAll(Config.CachePath, 0755); err != nil {
			logger.Error("failed to create cache directory", err)
		}
	})
	return datasourceInstance
}

/**
* fetch returns the body of a url, reading from the disk cache when the
* file has been downloaded before and writing it there when it hasn't
 */
func (ds *Datasource) fetch(url, cacheName string) ([]byte, error) {
	cacheFile := filepath.Join(Config.CachePath, cacheName)
	if data, err := os.ReadFile(cacheFile); err == nil {
		logger.Debug("loaded from cache", cacheFile)
		return data, nil
	}
	logger.Info("fetching", url)
	data, err := transport.Get(url, Config.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		logger.Warn("failed to cache", cacheFile, err)
	}
	return data, nil
}

// GetCompetitions fetches and parses the competitions json
func (ds *Datasource) GetCompetitions() (*Table, error) {
	data, err := ds.fetch(ds.CompetitionURL, "competitions.json")
	if err != nil {
		return nil, err
	}
	return ReadCompetitions(data)
}

// GetMatches fetches and parses the match json for one competition and
// season
func (ds *Datasource) GetMatches(competitionID, seasonID int) (*Table, error) {
	url := fmt.Sprintf("%s/%d/%d.json", ds.MatchURL, competitionID, seasonID)
	cacheName := fmt.Sprintf("matches-%d-%d.json", competitionID, seasonID)
	data, err := ds.fetch(url, cacheName)
	if err != nil {
		return nil, err
	}
	return ReadMatches(data)
}

// GetEvents fetches and flattens the event json for one match
func (ds *Datasource) GetEvents(matchID int) (*EventData, error) {
	url := fmt.Sprintf("%s/%d.json", ds.EventURL, matchID)
	cacheName := fmt.Sprintf("events-%d.json", matchID)
	data, err := ds.fetch(url, cacheName)
	if err != nil {
		return nil, err
	}
	return ReadEvents(data, matchID)
}

// GetLineups fetches and flattens the lineup json for one match
func (ds *Datasource) GetLineups(matchID int) (*Table, error) {
	url := fmt.Sprintf("%s/%d.json", ds.LineupURL, matchID)
	cacheName := fmt.Sprintf("lineups-%d.json", matchID)
	data, err := ds.fetch(url, cacheName)
	if err != nil {
		return nil, err
	}
	return ReadLineups(data, matchID)
}

// links scrapes the anchor tags of a repository listing page
func (ds *Datasource) links(url string) ([]*goquery.Selection, error) {
	data, err := transport.Get(url, Config.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing %s: %w", url, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing %s: %w", url, err)
	}
	var anchors []*goquery.Selection
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		anchors = append(anchors, s)
	})
	return anchors, nil
}

/**
* EventLinks lists the urls of every event json in the open data
* repository by scraping the events directory listing
 */
func (ds *Datasource) EventLinks() ([]string, error) {
	anchors, err := ds.links(ds.RepositoryURL + "/events")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, a := range anchors {
		href, _ := a.Attr("href")
		if strings.HasSuffix(href, ".json") {
			out = append(out, fmt.Sprintf("%s/%s", ds.EventURL, filepath.Base(href)))
		}
	}
	return out, nil
}

// LineupLinks lists the urls of every lineup json in the open data
// repository
func (ds *Datasource) LineupLinks() ([]string, error) {
	anchors, err := ds.links(ds.RepositoryURL + "/lineups")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, a := range anchors {
		href, _ := a.Attr("href")
		if strings.HasSuffix(href, ".json") {
			out = append(out, fmt.Sprintf("%s/%s", ds.LineupURL, filepath.Base(href)))
		}
	}
	return out, nil
}

/**
* MatchLinks lists the urls of every match json. The matches directory
* holds one folder per competition, so each folder's listing is
* scraped in turn.
 */
func (ds *Datasource) MatchLinks() ([]string, error) {
	anchors, err := ds.links(ds.RepositoryURL + "/matches")
	if err != nil {
		return nil, err
	}
	var folders []string
	for _, a := range anchors {
		href, _ := a.Attr("href")
		if strings.Contains(href, "/tree/master/data/matches/") {
			folders = append(folders, filepath.Base(href))
		}
	}
	var out []string
	for _, folder := range folders {
		inner, err := ds.links(fmt.Sprintf("%s/matches/%s", ds.RepositoryURL, folder))
		if err != nil {
			logger.Warn("failed to list match folder", folder, err)
			continue
		}
		for _, a := range inner {
			href, _ := a.Attr("href")
			if strings.HasSuffix(href, ".json") {
				out = append(out, fmt.Sprintf("%s/%s/%s", ds.MatchURL, folder, filepath.Base(href)))
			}
		}
	}
	return out, nil
}
