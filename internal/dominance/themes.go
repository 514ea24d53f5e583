package dominance

var titles = map[Archetype]string{
	ArchetypeSummits:    "L'Âme des Cimes",
	ArchetypeWarMachine: "La Machine de Guerre",
	ArchetypeMetronome:  "Le Métronome",
	ArchetypeExplorer:   "L'Explorateur",
}

var descriptions = map[Archetype]string{
	ArchetypeSummits:    "Les sommets t'appellent, tu réponds présent. Ton terrain de jeu : les montagnes. Ta devise : plus haut, toujours plus haut. Chaque mètre de dénivelé est une victoire que tu graves dans la roche.",
	ArchetypeWarMachine: "Tu ne t'entraînes pas, tu combats. Intensité maximale, puissance brute, zéro compromis. Chaque séance est une bataille que tu domines avec une férocité implacable.",
	ArchetypeMetronome:  "Régularité absolue, discipline de fer. Quand les autres abandonnent, toi tu persistes. Ta constance est légendaire. Jour après jour, kilomètre après kilomètre, tu construis ta légende.",
	ArchetypeExplorer:   "Les sentiers battus t'ennuient. Tu cherches l'inconnu, repousses les frontières, découvres de nouveaux horizons. Ta curiosité est sans limite, ton terrain de jeu est le monde entier.",
}

var themes = map[Archetype]Theme{
	ArchetypeSummits: {
		Name: "L'Âme des Cimes",
		Colors: ThemeColors{
			Primary:    "#2D7A4F",
			Secondary:  "#50C878",
			Accent:     "#E8F4EA",
			Background: "#1A1F1A",
		},
		Gradients: ThemeGradients{
			Main:    "linear-gradient(135deg, #1A3A2A 0%, #2D7A4F 50%, #50C878 100%)",
			Overlay: "radial-gradient(circle, rgba(80, 200, 120, 0.2) 0%, transparent 70%)",
		},
		Badge: ThemeBadge{Emoji: "🏔️", Label: "Grimpeur Élite"},
	},
	ArchetypeWarMachine: {
		Name: "La Machine de Guerre",
		Colors: ThemeColors{
			Primary:    "#9333EA",
			Secondary:  "#C026D3",
			Accent:     "#0A0A0A",
			Background: "#0F0F0F",
		},
		Gradients: ThemeGradients{
			Main:    "linear-gradient(135deg, #0A0A0A 0%, #9333EA 50%, #C026D3 100%)",
			Overlay: "radial-gradient(circle, rgba(147, 51, 234, 0.3) 0%, transparent 70%)",
		},
		Badge: ThemeBadge{Emoji: "⚡", Label: "Puissance Brute"},
	},
	ArchetypeMetronome: {
		Name: "Le Métronome",
		Colors: ThemeColors{
			Primary:    "#FC4C02",
			Secondary:  "#FC5200",
			Accent:     "#FFFFFF",
			Background: "#1A1A1A",
		},
		Gradients: ThemeGradients{
			Main:    "linear-gradient(135deg, #1A1A1A 0%, #FC4C02 50%, #FFFFFF 100%)",
			Overlay: "radial-gradient(circle, rgba(252, 76, 2, 0.2) 0%, transparent 70%)",
		},
		Badge: ThemeBadge{Emoji: "🎯", Label: "Régularité Parfaite"},
	},
	ArchetypeExplorer: {
		Name: "L'Explorateur",
		Colors: ThemeColors{
			Primary:    "#3B82F6",
			Secondary:  "#F59E0B",
			Accent:     "#D4A574",
			Background: "#0F1419",
		},
		Gradients: ThemeGradients{
			Main:    "linear-gradient(135deg, #0F1419 0%, #3B82F6 50%, #F59E0B 100%)",
			Overlay: "radial-gradient(circle, rgba(59, 130, 246, 0.2) 0%, transparent 70%)",
		},
		Badge: ThemeBadge{Emoji: "🧭", Label: "Découvreur de Routes"},
	},
}
