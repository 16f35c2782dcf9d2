// Package export renders a generated world and its lore result to
// consumable formats: a JSON snapshot, an SVG terrain map, and a
// Tiled-compatible TMJ tilemap. Each format has an Export* function
// returning bytes (or a document) and a Save*ToFile convenience wrapper.
package export
