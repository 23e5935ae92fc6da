package storefront

const (
	brandName = "ThemeSwitch Pro"

	heroTitle    = "Welcome to ThemeSwitch Pro"
	heroSubtitle = "Experience the power of dynamic theming in your terminal. Switch between themes and see how the entire layout, typography and styling transform."
	productsHead = "Featured Products"

	aboutTitle    = "About ThemeSwitch Pro"
	aboutSubtitle = "Learn more about our approach to dynamic theming and user experience design."
	missionTitle  = "Our Mission"
	missionBody   = "At ThemeSwitch Pro, we believe that user experience should be personal and adaptable. Each theme represents a different design philosophy while keeping the same functionality across all variations."

	contactTitle    = "Contact Us"
	contactSubtitle = "Get in touch with our team. We'd love to hear from you and discuss your project needs."
	contactEmail    = "hello@themeswitchpro.com"
	contactPhone    = "+1 (555) 123-4567"
	contactAddress  = "123 Design Street, Creative City, CC 12345"

	footerTagline = "Professional terminal app with dynamic theming"
)

const helpContent = `
Navigation:
  tab / shift+tab   Next / previous page
  t                 Choose a theme
  ?                 Toggle this help
  q, ctrl+c         Quit

Products (Home):
  /                 Search products (enter or esc to leave)
  ←/h  →/l          Previous / next page
  g  G              First / last page

Contact:
  enter, i          Edit the form
  tab / shift+tab   Move between fields
  ctrl+s            Send message
  esc               Leave the form

Theme picker:
  ↑/↓, j/k          Move
  1-3               Pick directly
  enter             Apply
  esc               Close
`
