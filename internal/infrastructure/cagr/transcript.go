package cagr

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"GPAConverter/internal/domain"
	"GPAConverter/internal/ports"
)

var _ ports.TranscriptSource = (*Client)(nil)

// FetchTranscript scrapes the transcript of records. Rows without class
// hours and rows graded with a concept instead of a number are skipped with
// a warning, so downstream conversion only ever sees numeric records.
func (c *Client) FetchTranscript(ctx context.Context) (domain.Transcript, error) {
	doc, err := c.fetchDocument(ctx, c.cfg.RecordURL)
	if err != nil {
		return nil, fmt.Errorf("transcript page: %w", err)
	}

	transcript := make(domain.Transcript, 0)
	doc.Find("tr.rich-table-row").Each(func(i int, row *goquery.Selection) {
		rec, err := c.parseRow(row)
		if err != nil {
			c.warn("skipping transcript row", "row", i, "reason", err)
			return
		}
		transcript = append(transcript, rec)
	})

	c.debug("transcript scraped", "records", len(transcript))
	return transcript, nil
}

// parseRow reads one table row: course code, description, semester class
// hours, decimal grade. Credits are class hours divided by the weeks in a
// term.
func (c *Client) parseRow(row *goquery.Selection) (domain.CourseRecord, error) {
	cells := row.Find("td")
	if cells.Length() < 4 {
		return domain.CourseRecord{}, fmt.Errorf("want 4 cells, found %d", cells.Length())
	}

	code := strings.TrimSpace(cells.Eq(0).Text())
	name := strings.TrimSpace(cells.Eq(1).Text())

	hours, err := strconv.ParseFloat(strings.TrimSpace(cells.Eq(2).Text()), 64)
	if err != nil || hours <= 0 {
		return domain.CourseRecord{}, fmt.Errorf("course %s has no class hours", code)
	}

	grade, err := strconv.ParseFloat(strings.TrimSpace(cells.Eq(3).Text()), 64)
	if err != nil {
		return domain.CourseRecord{}, fmt.Errorf("course %s is graded with a concept", code)
	}

	return domain.CourseRecord{
		Code:    code,
		Name:    name,
		Credits: hours / c.cfg.TermWeeks(),
		Grade:   grade,
	}, nil
}
