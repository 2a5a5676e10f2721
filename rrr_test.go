package gadt_test

import (
	"fmt"
	"testing"

	"github.com/bikallem/gadt1"
	"github.com/stretchr/testify/require"
)

// TestWorkedScenario drives an about/product/float/contact/splat
// route table and checks every documented match/no-match outcome,
// including the precedence cases where two routes both accept a token
// and the earlier-inserted one must win.
func TestWorkedScenario(t *testing.T) {
	aboutPage := gadt.MustNewRoute[string](
		gadt.Lit("home", gadt.Lit("about", gadt.End())),
		func() string { return "about page" },
	)
	productPage := gadt.MustNewRoute[string](
		gadt.Lit("home", gadt.Var(gadt.Int, gadt.TrailingSlash())),
		func(i int) string { return fmt.Sprintf("Product Page. Product Id : %d", i) },
	)
	floatPage := gadt.MustNewRoute[string](
		gadt.Lit("home", gadt.Var(gadt.Float, gadt.TrailingSlash())),
		func(f float64) string { return fmt.Sprintf("Float page. number : %v", f) },
	)
	contactPage := gadt.MustNewRoute[string](
		gadt.Lit("contact", gadt.Var(gadt.String, gadt.Var(gadt.Int, gadt.End()))),
		func(n string, k int) string { return fmt.Sprintf("Contact page. Hi, %s. Number %d", n, k) },
	)
	fullSplatPage := gadt.MustNewRoute[string](
		gadt.Lit("home", gadt.Lit("products", gadt.FullSplat())),
		func() string { return "full splat page" },
	)
	wildcardPage := gadt.MustNewRoute[string](
		gadt.Lit("home", gadt.Var(gadt.String, gadt.FullSplat())),
		func(s string) string { return fmt.Sprintf("Wildcard page. %s", s) },
	)
	contactPage2 := gadt.MustNewRoute[string](
		gadt.Lit("contact", gadt.Var(gadt.String, gadt.Var(gadt.Bool, gadt.End()))),
		func(n string, b bool) string { return fmt.Sprintf("Contact Page2. Name %s. Call me later: %v", n, b) },
	)
	notFoundPage := gadt.MustNewRoute[string](
		gadt.End(),
		func() string { return "404 Not found" },
	)

	router := gadt.Compile([]*gadt.Route[string]{
		aboutPage,
		productPage,
		floatPage,
		contactPage,
		fullSplatPage,
		wildcardPage,
		contactPage2,
		notFoundPage,
	})

	cases := []struct {
		uri    string
		result string
		ok     bool
	}{
		{"/home/about", "about page", true},
		{"/home/about/", "", false},
		{"/home/100001/", "Product Page. Product Id : 100001", true},
		{"/home/100001.1/", "Float page. number : 100001.1", true},
		{"/home/products/xyz\nabc", "full splat page", true},
		{"/home/product1/", "Wildcard page. product1", true},
		{"/contact/bikal/123456", "Contact page. Hi, bikal. Number 123456", true},
		{"/contact/bob/false", "Contact Page2. Name bob. Call me later: false", true},
		{"/", "404 Not found", true},
		{"", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.uri, func(t *testing.T) {
			got, ok := router.Match(tc.uri)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.result, got)
			}
		})
	}
}

// TestWorkedScenario_RepeatedCompileIsObservationallyIdentical checks
// that building the router from the same route list in the same
// order twice yields the same behavior.
func TestWorkedScenario_RepeatedCompileIsObservationallyIdentical(t *testing.T) {
	routes := []*gadt.Route[string]{
		gadt.MustNewRoute[string](gadt.Lit("a", gadt.End()), func() string { return "a" }),
		gadt.MustNewRoute[string](gadt.Var(gadt.Int, gadt.End()), func(int) string { return "int" }),
	}

	r1 := gadt.Compile(routes)
	r2 := gadt.Compile(routes)

	for _, uri := range []string{"/a", "/1", "/notanumber"} {
		v1, ok1 := r1.Match(uri)
		v2, ok2 := r2.Match(uri)
		require.Equal(t, ok1, ok2)
		require.Equal(t, v1, v2)
	}
}

// TestFailedDecoderDoesNotBlockSibling checks that a Variable whose
// decoder rejects the token falls through to a later sibling Literal.
func TestFailedDecoderDoesNotBlockSibling(t *testing.T) {
	intRoute := gadt.MustNewRoute[string](gadt.Var(gadt.Int, gadt.End()), func(i int) string { return "int" })
	literalRoute := gadt.MustNewRoute[string](gadt.Lit("abc", gadt.End()), func() string { return "literal" })

	router := gadt.Compile([]*gadt.Route[string]{intRoute, literalRoute})

	got, ok := router.Match("/abc")
	require.True(t, ok)
	require.Equal(t, "literal", got)
}
