package assemble

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"

	"parcelnorm/internal"
	"parcelnorm/internal/mapping"
	"parcelnorm/internal/owners"
	"parcelnorm/internal/source"
	"parcelnorm/internal/util"
)

const currentOwners = "current"

var (
	saleDate       = []string{"Sale Date", "Date", "Transfer Date", "Recorded"}
	salePrice      = []string{"Sale Price", "Price", "Amount", "Consideration", "Sale Amount"}
	saleInstrument = []string{"Deed Type", "Instrument Type", "Instrument", "Deed", "Doc Type", "Type"}
	saleNumber     = []string{"Instrument Number", "Instrument #", "Instr #", "Document Number", "Doc Number", "Clerk File", "OR Number"}
	saleBookPage   = []string{"Book/Page", "Book Page", "OR Book/Page", "Official Records"}
	saleBook       = []string{"Book"}
	salePage       = []string{"Page"}
	saleGrantee    = []string{"Grantee", "Buyer", "New Owner", "Purchaser"}
	saleLink       = []string{"Book", "Page", "Instrument", "Document", "Doc", "Link", "View"}

	reBookPage = regexp.MustCompile(`(?i)^\D*?(\d+)\s*(?:/|-|\s+PG\.?\s*|\s+PAGE\s+)\s*(\d+)\D*$`)
	reDigits   = regexp.MustCompile(`^\d{5,}$`)
)

// Sale is one transfer with its optional deed, recorded files and buyers.
type Sale struct {
	Sales  *internal.Sales
	Deed   *internal.Deed
	Files  []*internal.File
	Buyers []owners.Ref
}

// Sales assembles the transfer history, most recent first. A row with
// neither a date nor a price is skipped.
func Sales(in *Input) []Sale {
	rows := in.rows(in.Profile.Tables.Sales)
	deeds := in.Profile.DeedTypes()
	dates := in.Profile.Dates()

	type pending struct {
		sale     Sale
		grantees []owners.Owner
	}
	var list []pending
	hasGrantee := false

	for _, row := range rows {
		date := util.ParseDate(row.Get(saleDate...), dates...)
		price := util.ParseNumber(row.Get(salePrice...))
		if date == nil && price == nil {
			continue
		}
		s := Sale{Sales: &internal.Sales{
			Provenance:            in.provenance(),
			OwnershipTransferDate: date,
			PurchasePriceAmount:   price,
		}}
		s.Deed = in.deed(row, deeds)
		if s.Deed != nil {
			if link := row.Link(saleLink...); link != "" {
				s.Files = append(s.Files, in.file(link, s.Deed))
			} else if link := row.Link(); link != "" {
				s.Files = append(s.Files, in.file(link, s.Deed))
			}
		}

		p := pending{sale: s}
		if row.Has(saleGrantee...) {
			hasGrantee = true
			p.grantees = in.Parser.Parse(row.Get(saleGrantee...))
		}
		list = append(list, p)
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].sale.Sales.OwnershipTransferDate, list[j].sale.Sales.OwnershipTransferDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})

	byDate := in.ownersByDate()
	current, hasCurrent := byDate[currentOwners]
	if !hasCurrent && !hasGrantee {
		current = in.Parser.Parse(in.value(in.Profile.Labels.Owner))
	}

	out := make([]Sale, 0, len(list))
	for i, p := range list {
		buyers := p.grantees
		if d := p.sale.Sales.OwnershipTransferDate; d != nil {
			if o, ok := byDate[*d]; ok {
				buyers = o
			}
		}
		if i == 0 && len(buyers) == 0 {
			buyers = current
		}
		p.sale.Buyers = in.Owners.AddAll(buyers)
		out = append(out, p.sale)
	}
	return out
}

func (in *Input) deed(row source.Row, deeds mapping.Table[internal.DeedType]) *internal.Deed {
	raw := row.Get(saleInstrument...)
	number := row.Get(saleNumber...)
	if reDigits.MatchString(raw) {
		// an instrument column that only holds the recording number
		number, raw = util.FirstNonEmpty(number, raw), ""
	}
	book, page := splitBookPage(row.Get(saleBookPage...))
	if book == "" {
		book, page = row.Get(saleBook...), row.Get(salePage...)
		if b, p := splitBookPage(book); b != "" && page == "" {
			book, page = b, p
		}
	}
	if raw == "" && number == "" && book == "" && page == "" {
		return nil
	}
	return &internal.Deed{
		Provenance:       in.provenance(),
		DeedType:         deeds.MapWith(raw, in.Misses),
		Book:             util.CleanPtr(book),
		Page:             util.CleanPtr(page),
		InstrumentNumber: util.CleanPtr(number),
	}
}

// splitBookPage reads "1234/567", "1234-567" or "1234 PG 567".
func splitBookPage(raw string) (string, string) {
	m := reBookPage.FindStringSubmatch(util.CleanText(raw))
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}

func (in *Input) file(link string, d *internal.Deed) *internal.File {
	f := &internal.File{
		Provenance:   in.provenance(),
		OriginalURL:  link,
		DocumentType: mapping.DocumentTypeFor(d.DeedType),
	}
	switch {
	case d.Book != nil && d.Page != nil:
		f.Name = fmt.Sprintf("OR Book %s Page %s", *d.Book, *d.Page)
	case d.InstrumentNumber != nil:
		f.Name = "Instrument " + *d.InstrumentNumber
	default:
		f.Name = path.Base(strings.SplitN(link, "?", 2)[0])
	}
	if ext := strings.TrimPrefix(strings.ToLower(path.Ext(strings.SplitN(link, "?", 2)[0])), "."); ext != "" && len(ext) <= 4 {
		f.FileFormat = &ext
	}
	return f
}

// ownersByDate validates the sidecar owners once, keyed by ISO date or
// "current".
func (in *Input) ownersByDate() map[string][]owners.Owner {
	if len(in.Overrides.OwnersByDate) == 0 {
		return nil
	}
	out := make(map[string][]owners.Owner, len(in.Overrides.OwnersByDate))
	for key, list := range in.Overrides.OwnersByDate {
		if key != currentOwners {
			iso := util.ParseDate(key)
			if iso == nil {
				continue
			}
			key = *iso
		}
		for _, s := range list {
			if o, ok := in.Parser.FromStructured(s); ok {
				out[key] = append(out[key], o)
			}
		}
	}
	return out
}
