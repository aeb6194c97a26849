package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfm-labs/tidycharts/internal/table"
)

func languageTable() *table.Table {
	return table.New(
		[]string{"country", "language", "family", "native_speakers"},
		[][]string{
			{"Nigeria", "Hausa", "Afro-Asiatic", "54000000"},
			{"Niger", "Hausa", "Afro-Asiatic", "12000000"},
			{"Ghana", "Hausa", "Afro-Asiatic", "500000"},
			{"Kenya", "Swahili", "Niger-Congo", "2000000"},
			{"Tanzania", "Swahili", "Niger-Congo", "15000000"},
			{"Ethiopia", "Amharic", "Afro-Asiatic", "32000000"},
			{"Lesotho", "Sotho", "Niger-Congo", "NA"},
			{"Madagascar", "Malagasy", "Austronesian", "25000000"},
		},
	)
}

func TestAggregateCount(t *testing.T) {
	src := languageTable()

	res, err := Aggregate(src, "country", []Metric{
		{Name: "language_count", Column: "language", Op: Count},
	})
	require.NoError(t, err)

	t.Run("one group per distinct key", func(t *testing.T) {
		assert.Len(t, res.Groups, 8)
	})

	t.Run("counts sum to source rows", func(t *testing.T) {
		var total float64
		for _, g := range res.Groups {
			total += g.Value("language_count")
		}
		assert.Equal(t, float64(src.Len()), total)
	})

	t.Run("null cells excluded from count", func(t *testing.T) {
		res, err := Aggregate(src, "country", []Metric{
			{Name: "speaker_rows", Column: "native_speakers", Op: Count},
		})
		require.NoError(t, err)
		var total float64
		for _, g := range res.Groups {
			total += g.Value("speaker_rows")
		}
		// one NA row
		assert.Equal(t, float64(src.Len()-1), total)
	})
}

func TestAggregateSortedDescending(t *testing.T) {
	src := languageTable()

	res, err := Aggregate(src, "family", []Metric{
		{Name: "entries", Column: "language", Op: Count},
	})
	require.NoError(t, err)

	require.Len(t, res.Groups, 3)
	assert.Equal(t, "Afro-Asiatic", res.Groups[0].Key)
	assert.Equal(t, float64(4), res.Groups[0].Value("entries"))
	for i := 1; i < len(res.Groups); i++ {
		assert.GreaterOrEqual(t,
			res.Groups[i-1].Value("entries"),
			res.Groups[i].Value("entries"))
	}
}

func TestAggregateTiesKeepInputOrder(t *testing.T) {
	src := table.New([]string{"k", "v"}, [][]string{
		{"b", "1"},
		{"a", "1"},
		{"c", "1"},
	})

	res, err := Aggregate(src, "k", []Metric{
		{Name: "n", Column: "v", Op: Count},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "c"}, res.Keys())
}

func TestAggregateSum(t *testing.T) {
	src := languageTable()

	res, err := Aggregate(src, "family", []Metric{
		{Name: "total_speakers", Column: "native_speakers", Op: Sum},
	})
	require.NoError(t, err)

	byKey := res.ByKey("total_speakers")
	assert.Equal(t, float64(54000000+12000000+500000+32000000), byKey["Afro-Asiatic"])
	// NA excluded from the sum
	assert.Equal(t, float64(2000000+15000000), byKey["Niger-Congo"])
	assert.Equal(t, float64(25000000), byKey["Austronesian"])
}

func TestAggregateDistinct(t *testing.T) {
	src := languageTable()

	res, err := Aggregate(src, "language", []Metric{
		{Name: "country_count", Column: "country", Op: Distinct},
	})
	require.NoError(t, err)

	t.Run("cross-border language counts distinct countries", func(t *testing.T) {
		byKey := res.ByKey("country_count")
		assert.Equal(t, float64(3), byKey["Hausa"])
		assert.Equal(t, float64(2), byKey["Swahili"])
		assert.Equal(t, float64(1), byKey["Amharic"])
	})

	t.Run("filter excludes single-country languages", func(t *testing.T) {
		cross := res.FilterGreater("country_count", 1)
		assert.Equal(t, []string{"Hausa", "Swahili"}, cross.Keys())
	})
}

func TestAggregateStdDev(t *testing.T) {
	t.Run("sample stddev", func(t *testing.T) {
		src := table.New([]string{"k", "v"}, [][]string{
			{"a", "2"},
			{"a", "4"},
			{"a", "6"},
		})
		res, err := Aggregate(src, "k", []Metric{
			{Name: "spread", Column: "v", Op: StdDev},
		})
		require.NoError(t, err)
		assert.InDelta(t, 2.0, res.Groups[0].Value("spread"), 1e-9)
	})

	t.Run("single observation yields zero", func(t *testing.T) {
		src := table.New([]string{"k", "v"}, [][]string{{"a", "42"}})
		res, err := Aggregate(src, "k", []Metric{
			{Name: "spread", Column: "v", Op: StdDev},
		})
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Groups[0].Value("spread"))
	})

	t.Run("null coerced to zero", func(t *testing.T) {
		src := table.New([]string{"k", "v"}, [][]string{
			{"a", "NA"},
			{"a", "4"},
		})
		res, err := Aggregate(src, "k", []Metric{
			{Name: "spread", Column: "v", Op: StdDev},
		})
		require.NoError(t, err)
		// samples are {0, 4}: mean 2, sample variance 8
		assert.InDelta(t, math.Sqrt(8), res.Groups[0].Value("spread"), 1e-9)
	})
}

func TestAggregateRatio(t *testing.T) {
	src := languageTable()

	res, err := Aggregate(src, "family", []Metric{
		{Name: "total_speakers", Column: "native_speakers", Op: Sum},
		{Name: "language_count", Column: "language", Op: Distinct},
		{Name: "speaker_density", Op: Ratio, Num: "total_speakers", Den: "language_count"},
	})
	require.NoError(t, err)

	byKey := res.ByKey("speaker_density")
	// Afro-Asiatic: 98.5M speakers over 2 distinct languages
	assert.InDelta(t, 98500000.0/2, byKey["Afro-Asiatic"], 1e-9)
	// Niger-Congo: 17M over 2 languages (Sotho has NA speakers but still counts as a language)
	assert.InDelta(t, 17000000.0/2, byKey["Niger-Congo"], 1e-9)

	t.Run("unknown ratio operand", func(t *testing.T) {
		_, err := Aggregate(src, "family", []Metric{
			{Name: "r", Op: Ratio, Num: "nope", Den: "nada"},
		})
		assert.Error(t, err)
	})
}

func TestAggregateIdempotent(t *testing.T) {
	src := languageTable()
	metrics := []Metric{
		{Name: "total_speakers", Column: "native_speakers", Op: Sum},
		{Name: "language_count", Column: "language", Op: Distinct},
	}

	first, err := Aggregate(src, "family", metrics)
	require.NoError(t, err)
	second, err := Aggregate(src, "family", metrics)
	require.NoError(t, err)

	require.Equal(t, first.Keys(), second.Keys())
	for i := range first.Groups {
		assert.Equal(t, first.Groups[i].Value("total_speakers"), second.Groups[i].Value("total_speakers"))
		assert.Equal(t, first.Groups[i].Value("language_count"), second.Groups[i].Value("language_count"))
	}
}

func TestAggregateSchemaErrors(t *testing.T) {
	src := languageTable()

	t.Run("missing grouping key", func(t *testing.T) {
		_, err := Aggregate(src, "continent", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "continent")
	})

	t.Run("missing metric column", func(t *testing.T) {
		_, err := Aggregate(src, "country", []Metric{
			{Name: "n", Column: "population", Op: Sum},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "population")
	})
}

func TestResultHelpers(t *testing.T) {
	src := languageTable()
	res, err := Aggregate(src, "country", []Metric{
		{Name: "n", Column: "language", Op: Count},
	})
	require.NoError(t, err)

	t.Run("Top truncates", func(t *testing.T) {
		assert.Len(t, res.Top(3).Groups, 3)
		assert.Len(t, res.Top(100).Groups, len(res.Groups))
	})

	t.Run("Values matches Keys order", func(t *testing.T) {
		keys := res.Keys()
		values := res.Values("n")
		require.Equal(t, len(keys), len(values))
		byKey := res.ByKey("n")
		for i, k := range keys {
			assert.Equal(t, byKey[k], values[i])
		}
	})

	t.Run("SortByDesc on another metric", func(t *testing.T) {
		dens, err := Aggregate(src, "family", []Metric{
			{Name: "entries", Column: "language", Op: Count},
			{Name: "total", Column: "native_speakers", Op: Sum},
		})
		require.NoError(t, err)
		dens.SortByDesc("total")
		for i := 1; i < len(dens.Groups); i++ {
			assert.GreaterOrEqual(t,
				dens.Groups[i-1].Value("total"),
				dens.Groups[i].Value("total"))
		}
	})
}
