package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const fixtureYAML = `
buckets:
  - key: gadgets
    products:
      - name: Pixel 9
        category: Electronics
        glyph: "📱"
        image_url: https://example.test/pixel.jpg
        deals:
          flipkart:
            original_price: 79999
            discount_price: 69999
            discount: 12
            coupon: PIXEL12
            cashback: 900
  - key: audio
    products:
      - name: Bose QC Ultra
        category: Electronics
        glyph: "🎧"
        deals:
          amazon:
            original_price: 35900
            discount_price: 29900
            discount: 16
            coupon: BOSE16
            cashback: 500
`

func TestFileSourceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(fixtureYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(c.Buckets))
	}
	if c.Buckets[0].Key != "gadgets" || c.Buckets[1].Key != "audio" {
		t.Fatalf("bucket order lost: %q, %q", c.Buckets[0].Key, c.Buckets[1].Key)
	}

	pixel := c.Buckets[0].Products[0]
	if pixel.Name != "Pixel 9" {
		t.Fatalf("product name = %q", pixel.Name)
	}
	offer := pixel.Deals.Get(PlatformFlipkart)
	if offer == nil {
		t.Fatal("flipkart offer missing")
	}
	if offer.DiscountPercent != 12 || offer.CouponCode != "PIXEL12" {
		t.Fatalf("offer fields wrong: %+v", offer)
	}
	if offer.Savings() != 10000 {
		t.Fatalf("savings = %d, want 10000", offer.Savings())
	}
	if pixel.Deals.Get(PlatformAmazon) != nil {
		t.Fatal("amazon offer must be nil")
	}
}

func TestFileSourceRejectsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("buckets: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := (FileSource{Path: path}).Load(context.Background()); err == nil {
		t.Fatal("expected error for empty catalog file")
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	if _, err := (FileSource{Path: "/nonexistent/catalog.yaml"}).Load(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
