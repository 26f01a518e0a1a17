package topics

// Default returns the built-in tree. Its locators resolve against the
// embedded pages in package docs.
func Default() Tree {
	return Tree{Sections: []Section{
		{
			Header: "Getting Started",
			Topics: []Topic{
				{Name: "Introduction", File: "pages/introduction.md"},
				{Name: "Installation", File: "pages/installation.md"},
			},
		},
		{
			Header: "Features",
			Topics: []Topic{
				{Name: "Basic Features", File: "pages/basic_features.md"},
				{Name: "Advanced Features", File: "pages/advanced_features.md"},
			},
		},
		{
			Header: "Other",
			Topics: []Topic{
				{Name: "Troubleshooting", File: "pages/troubleshooting.md"},
				{Name: "Architecture", File: "pages/architecture.md"},
				{Name: "Contributions", File: "pages/contributions.md"},
				{Name: "FAQ", File: "pages/faq.md"},
			},
		},
	}}
}
