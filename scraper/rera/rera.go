package rera

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"rera-scraper/config"
	"rera-scraper/models"
	"rera-scraper/services"
	"rera-scraper/utils"
)

// projectRef is one navigable reference collected from the listing page.
type projectRef struct {
	Name      string
	DetailURL string
}

// Scraper drives the Odisha RERA listing and detail pages through a headless
// browser and turns them into project records.
type Scraper struct {
	cfg       *config.Config
	logger    *utils.Logger
	extractor *services.Extractor
	artifacts *utils.ArtifactTracker
	seen      *utils.SeenSet
}

// New creates a ready-to-use Scraper.
func New(cfg *config.Config, logger *utils.Logger, artifacts *utils.ArtifactTracker) *Scraper {
	return &Scraper{
		cfg:       cfg,
		logger:    logger,
		extractor: services.NewExtractor(logger),
		artifacts: artifacts,
		seen:      utils.NewSeenSet(),
	}
}

// Run is the entry point: collects the first N distinct project references
// from the listing, then extracts one record per reference, sequentially and
// in discovery order. A detail page that fails to load yields an
// all-placeholder record rather than aborting the run.
func (s *Scraper) Run() ([]*models.ProjectRecord, error) {
	chromeBin := findChromeBinary(s.cfg.ChromeBin)
	s.logger.Info("[rera] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	silentCtx, cancelSilent := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelSilent()
	allocCtx = silentCtx

	refs, err := s.collectProjects(allocCtx)
	if err != nil {
		return nil, fmt.Errorf("listing: %w", err)
	}

	records := make([]*models.ProjectRecord, 0, len(refs))
	for i, ref := range refs {
		records = append(records, s.extractDetail(allocCtx, ref, i+1))
	}

	s.logger.Info("[rera] Extraction complete — %d records", len(records))
	return records, nil
}

// collectProjects loads the listing page, dismisses any blocking modal, waits
// for the grid to populate, and returns the first N distinct project
// references in page order.
func (s *Scraper) collectProjects(allocCtx context.Context) ([]projectRef, error) {
	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx, s.cfg.PageLoadTimeout())
	defer cancelTimeout()

	s.logger.Info("[listing] Navigating to %s", s.cfg.StartURL)
	if err := chromedp.Run(ctx, chromedp.Navigate(s.cfg.StartURL)); err != nil {
		return nil, fmt.Errorf("navigate: %w", err)
	}

	s.dismissModal(ctx)

	wait := &utils.WaitConfig{
		Timeout:  s.cfg.FieldSettleTimeout(),
		Interval: s.cfg.PollInterval(),
		Logger:   s.logger,
	}
	if err := wait.Until("listing-populated", func() (bool, error) {
		s.dismissModal(ctx)
		var count int
		if err := chromedp.Run(ctx, chromedp.Evaluate(countCardsJS, &count)); err != nil {
			return false, err
		}
		return count >= s.cfg.ProjectCount, nil
	}); err != nil {
		s.logger.Warn("[listing] %v — proceeding with whatever rendered", err)
	}

	var shot []byte
	if err := chromedp.Run(ctx, chromedp.CaptureScreenshot(&shot)); err != nil {
		s.logger.Warn("[listing] Screenshot failed: %v", err)
	} else if err := s.artifacts.SavePNG("listing_page.png", shot); err != nil {
		s.logger.Warn("[listing] Could not save screenshot: %v", err)
	}

	type cardData struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	var cards []cardData
	if err := chromedp.Run(ctx, chromedp.Evaluate(collectCardsJS, &cards)); err != nil {
		return nil, fmt.Errorf("collect cards: %w", err)
	}

	refs := make([]projectRef, 0, s.cfg.ProjectCount)
	for _, c := range cards {
		key := c.URL
		if key == "" {
			key = c.Name
		}
		if key == "" || !s.seen.Add(key) {
			continue
		}
		refs = append(refs, projectRef{Name: c.Name, DetailURL: c.URL})
		if len(refs) == s.cfg.ProjectCount {
			break
		}
	}

	if len(refs) < s.cfg.ProjectCount {
		s.logger.Warn("[listing] Only %d distinct projects found (wanted %d)",
			len(refs), s.cfg.ProjectCount)
	} else {
		s.logger.Info("[listing] Collected %d project references", len(refs))
	}
	return refs, nil
}

// extractDetail produces exactly one record for one project reference. Every
// failure mode short of a crash degrades to placeholder fields.
func (s *Scraper) extractDetail(allocCtx context.Context, ref projectRef, seq int) *models.ProjectRecord {
	rec := models.NewPlaceholderRecord(ref.DetailURL)

	s.logger.Info("[detail] (%d) Processing project %q", seq, ref.Name)

	if ref.DetailURL == "" {
		s.logger.Error("[detail] (%d) No detail link for %q — emitting placeholder record", seq, ref.Name)
		return rec
	}

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx, s.cfg.PageLoadTimeout())
	defer cancelTimeout()

	if err := chromedp.Run(ctx, chromedp.Navigate(ref.DetailURL)); err != nil {
		s.logger.Error("[detail] (%d) Failed to load %s: %v — emitting placeholder record",
			seq, ref.DetailURL, err)
		return rec
	}

	s.dismissModal(ctx)

	// The overview panel renders "--" until the registration data arrives.
	doc := s.waitForField(ctx, "project-name", projectNameLabels, s.cfg.FieldSettleTimeout())
	if doc != nil {
		rec.ProjectName = s.extractor.Field(doc, "Project Name", projectNameLabels)
		rec.ReraRegdNo = s.extractor.Field(doc, "Rera Regd. No", reraNoLabels)
	}

	s.openPromoterTab(ctx)

	doc = s.waitForField(ctx, "promoter-name", promoterNameLabels, s.cfg.TabContentTimeout())
	if doc == nil {
		doc = s.snapshot(ctx)
	}
	if doc != nil {
		if html, err := doc.Html(); err == nil {
			name := fmt.Sprintf("promoter_details_project_%d.html", seq)
			if err := s.artifacts.SaveHTML(name, html); err != nil {
				s.logger.Warn("[detail] (%d) Could not save snapshot: %v", seq, err)
			}
		}
		rec.PromoterName = s.extractor.Field(doc, "Promoter Name", promoterNameLabels)
		rec.PromoterAddress = s.extractor.Field(doc, "Address of the Promoter", promoterAddressLabels)
		rec.GSTNo = s.extractor.Field(doc, "GST No", gstNoLabels)
	}

	s.logger.Info("[detail] (%d) %s | %s | %s", seq, rec.ProjectName, rec.ReraRegdNo, rec.PromoterName)
	return rec
}

// dismissModal clicks through any SweetAlert2-style overlay intercepting
// input. The dialog can reappear after every navigation, so this is a
// precondition check, not a one-time step.
func (s *Scraper) dismissModal(ctx context.Context) {
	for attempt := 1; attempt <= s.cfg.ModalAttempts; attempt++ {
		var visible bool
		if err := chromedp.Run(ctx, chromedp.Evaluate(modalVisibleJS, &visible)); err != nil || !visible {
			return
		}

		s.logger.Info("[modal] Blocking dialog detected (attempt %d/%d) — clicking OK",
			attempt, s.cfg.ModalAttempts)

		var clicked bool
		if err := chromedp.Run(ctx, chromedp.Evaluate(modalDismissJS, &clicked)); err != nil {
			s.logger.Warn("[modal] Dismiss failed: %v", err)
			return
		}
		if clicked {
			_ = chromedp.Run(ctx, chromedp.Sleep(time.Second))
		}
	}
	s.logger.Warn("[modal] Dialog still visible after %d attempts", s.cfg.ModalAttempts)
}

// openPromoterTab activates the "Promoter Details" tab and waits for the
// loading overlay to clear. Promoter fields are not in the document until the
// tab has been activated.
func (s *Scraper) openPromoterTab(ctx context.Context) {
	var clicked bool
	if err := chromedp.Run(ctx, chromedp.Evaluate(promoterTabJS, &clicked)); err != nil {
		s.logger.Warn("[detail] Promoter tab click failed: %v", err)
		return
	}
	if !clicked {
		s.logger.Warn("[detail] Promoter Details tab not found — content may already be inline")
	}

	wait := &utils.WaitConfig{
		Timeout:  s.cfg.TabContentTimeout(),
		Interval: s.cfg.PollInterval(),
		Logger:   s.logger,
	}
	if err := wait.Until("spinner-hidden", func() (bool, error) {
		var busy bool
		if err := chromedp.Run(ctx, chromedp.Evaluate(spinnerVisibleJS, &busy)); err != nil {
			return false, err
		}
		return !busy, nil
	}); err != nil {
		s.logger.Warn("[detail] %v", err)
	}
}

// waitForField polls the DOM until one of the field's label variants yields a
// settled value. On timeout the most recent snapshot is still returned so
// extraction can proceed with best-effort data.
func (s *Scraper) waitForField(ctx context.Context, name string, labels []string, timeout time.Duration) *goquery.Document {
	var doc *goquery.Document

	wait := &utils.WaitConfig{
		Timeout:  timeout,
		Interval: s.cfg.PollInterval(),
		Logger:   s.logger,
	}
	err := wait.Until(name, func() (bool, error) {
		d := s.snapshot(ctx)
		if d == nil {
			return false, nil
		}
		doc = d
		_, ok := s.extractor.Lookup(d, labels)
		return ok, nil
	})
	if err != nil {
		s.logger.Warn("[detail] %v — proceeding with best-effort data", err)
	}
	return doc
}

// snapshot pulls the full rendered DOM as a queryable document.
func (s *Scraper) snapshot(ctx context.Context) *goquery.Document {
	var html string
	if err := chromedp.Run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil
	}
	doc, err := services.ParseSnapshot(html)
	if err != nil {
		return nil
	}
	return doc
}

const countCardsJS = `
	(function() {
		var headings = document.querySelectorAll('div.card h5');
		var n = 0;
		for (var i = 0; i < headings.length; i++) {
			var t = (headings[i].textContent || '').trim();
			if (t && t.toLowerCase() !== 'filter') n++;
		}
		return n;
	})()
`

const collectCardsJS = `
	(function() {
		var results = [];
		var cards = document.querySelectorAll('div.card');
		for (var i = 0; i < cards.length; i++) {
			var h5 = cards[i].querySelector('h5');
			if (!h5) continue;
			var name = (h5.textContent || '').trim();
			if (!name || name.toLowerCase() === 'filter') continue;
			var link = cards[i].querySelector('a.btn.btn-primary');
			results.push({ name: name, url: link && link.href ? link.href : '' });
		}
		return results;
	})()
`

const modalVisibleJS = `
	(function() {
		var container = document.querySelector('.swal2-container');
		if (!container) return false;
		var style = window.getComputedStyle(container);
		return style.display !== 'none' && style.visibility !== 'hidden';
	})()
`

const modalDismissJS = `
	(function() {
		var buttons = document.querySelectorAll('.swal2-container button');
		for (var i = 0; i < buttons.length; i++) {
			var t = (buttons[i].textContent || '').trim().toLowerCase();
			if (t === 'ok' || buttons[i].className.indexOf('swal2-confirm') !== -1) {
				buttons[i].click();
				return true;
			}
		}
		return false;
	})()
`

const promoterTabJS = `
	(function() {
		var links = document.querySelectorAll('a, button');
		for (var i = 0; i < links.length; i++) {
			var t = (links[i].textContent || '').trim();
			if (t.indexOf('Promoter Details') !== -1) {
				links[i].click();
				return true;
			}
		}
		return false;
	})()
`

const spinnerVisibleJS = `
	(function() {
		var spinners = document.querySelectorAll('.ngx-overlay, .ngx-foreground-spinner, .ngx-loading-text');
		for (var i = 0; i < spinners.length; i++) {
			var style = window.getComputedStyle(spinners[i]);
			if (style.display !== 'none' && style.visibility !== 'hidden') return true;
		}
		return false;
	})()
`

// findChromeBinary locates a Chrome/Chromium binary, preferring an explicit
// override from the config.
func findChromeBinary(override string) string {
	if override != "" {
		return override
	}
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
