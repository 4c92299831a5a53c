package process

import (
	"strings"

	"github.com/ecuadata/atlas/pkg/entities"
)

// categoryRule is one keyword group in the category priority order.
type categoryRule struct {
	category entities.Category
	keywords []string
}

// categoryRules is checked in order and the first matching group wins.
// Order is significant: a label like "museo histórico" matches both the
// museum and historic groups, and must resolve to the one checked earlier.
// World-heritage terms are checked first, the broad historic/monument terms
// last.
var categoryRules = []categoryRule{
	{entities.CategoryWorldHeritage, []string{"unesco", "patrimonio mundial", "patrimonio de la humanidad", "world heritage"}},
	{entities.CategoryArchaeological, []string{"arqueológ", "arqueolog", "archaeolog"}},
	{entities.CategoryReligious, []string{"iglesia", "catedral", "basílica", "basilica", "monasterio", "convento", "santuario", "capilla", "religios", "church", "cathedral"}},
	{entities.CategoryMuseum, []string{"museo", "museum"}},
	{entities.CategoryFortification, []string{"fortaleza", "fortificación", "fortificacion", "fuerte", "fortress", "fortification"}},
	{entities.CategoryPalace, []string{"palacio", "palace"}},
	{entities.CategoryLibrary, []string{"biblioteca", "library"}},
	{entities.CategoryTheater, []string{"teatro", "theatre", "theater"}},
	{entities.CategoryMarket, []string{"mercado", "market"}},
	{entities.CategoryHistoricCenter, []string{"centro históric", "centro historic", "historic centre", "historic center", "casco"}},
	{entities.CategoryMonument, []string{"monument", "históric", "historic"}},
}

// DetermineCategory resolves a heritage site's category from its raw type
// label by case-insensitive substring match against the fixed keyword
// groups. Labels matching no group fall back to the historic-center
// category, the reference's catch-all for heritage places.
func DetermineCategory(typeLabel string) entities.Category {
	label := strings.ToLower(typeLabel)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(label, kw) {
				return rule.category
			}
		}
	}
	return entities.CategoryHistoricCenter
}
