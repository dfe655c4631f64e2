package persona

// Keyword taxonomies for the keyword extractor. Matching is case-insensitive
// substring matching, so overlapping vocab ("craft" in org-size and beer
// contexts) can fire across categories; vectors are independent and this is
// intentional.

type vectorCategory struct {
	vector   Vector
	value    string
	keywords []string
	cap      float64 // confidence ceiling for this category
	perMatch float64 // confidence gained per distinct keyword match
}

type painCategory struct {
	painPoint  PainPoint
	keywords   []string
	confidence float64 // fixed, not match-count scaled
}

var vectorCategories = []vectorCategory{
	{
		vector: VectorFunctionalRole, value: RoleSales,
		keywords: []string{
			"sales", "sell", "field", "rep", "account manager", "quota",
			"pipeline", "territory", "closing deals", "sales team",
		},
		cap: 0.9, perMatch: 0.2,
	},
	{
		vector: VectorFunctionalRole, value: RoleMarketing,
		keywords: []string{
			"marketing", "brand manager", "campaign", "awareness",
			"promotion", "advertising", "consumer insights", "activation",
		},
		cap: 0.9, perMatch: 0.2,
	},
	{
		vector: VectorOrgType, value: OrgTypeSupplier,
		keywords: []string{
			"supplier", "brewery", "distillery", "winery", "producer",
			"brand owner", "we make", "we produce",
		},
		cap: 0.85, perMatch: 0.15,
	},
	{
		vector: VectorOrgType, value: OrgTypeRetailer,
		keywords: []string{
			"retailer", "retail", "store", "shelf", "on-premise",
			"off-premise", "bar", "restaurant", "chain", "grocery",
		},
		cap: 0.85, perMatch: 0.15,
	},
	{
		vector: VectorOrgSize, value: OrgSizeSmall,
		keywords: []string{
			"small", "startup", "family-owned", "craft", "boutique",
			"independent", "just starting",
		},
		cap: 0.65, perMatch: 0.1,
	},
	{
		vector: VectorOrgSize, value: OrgSizeMedium,
		keywords: []string{
			"regional", "mid-size", "midsize", "growing", "multi-state",
			"expanding",
		},
		cap: 0.65, perMatch: 0.1,
	},
	{
		vector: VectorOrgSize, value: OrgSizeLarge,
		keywords: []string{
			"national", "enterprise", "global", "large", "fortune",
			"thousands of", "nationwide",
		},
		cap: 0.65, perMatch: 0.1,
	},
	{
		vector: VectorProductFocus, value: ProductBeer,
		keywords: []string{
			"beer", "brew", "lager", "ipa", "ale", "draft", "taproom",
		},
		cap: 0.95, perMatch: 0.2,
	},
	{
		vector: VectorProductFocus, value: ProductSpirits,
		keywords: []string{
			"spirits", "whiskey", "whisky", "vodka", "tequila", "rum",
			"gin", "bourbon", "distilled",
		},
		cap: 0.95, perMatch: 0.2,
	},
	{
		vector: VectorProductFocus, value: ProductWine,
		keywords: []string{
			"wine", "vineyard", "varietal", "tasting room", "cellar",
		},
		cap: 0.95, perMatch: 0.2,
	},
	{
		vector: VectorLegacyUserType, value: LegacySupplier,
		keywords: []string{
			"supplier", "brewery", "distillery", "winery", "producer",
		},
		cap: 0.8, perMatch: 0.15,
	},
	{
		vector: VectorLegacyUserType, value: LegacyDistributor,
		keywords: []string{
			"distributor", "wholesaler", "distribution house", "middle tier",
		},
		cap: 0.8, perMatch: 0.15,
	},
}

var painCategories = []painCategory{
	{
		painPoint: PainExecutionBlindSpot,
		keywords: []string{
			"roi", "measure", "prove", "visibility", "tracking", "field",
			"execution", "blind spot", "no idea what",
		},
		confidence: 0.8,
	},
	{
		painPoint: PainMarketAssessment,
		keywords: []string{
			"market size", "opportunity", "assess", "which markets",
			"expansion", "where to launch", "white space",
		},
		confidence: 0.7,
	},
	{
		painPoint: PainSalesEffectiveness,
		keywords: []string{
			"sales", "close rate", "win rate", "effectiveness",
			"productivity", "quota", "conversion", "sell more",
		},
		confidence: 0.75,
	},
	{
		painPoint: PainMarketPositioning,
		keywords: []string{
			"positioning", "competitive", "differentiate", "stand out",
			"versus", "compare to", "price position",
		},
		confidence: 0.7,
	},
	{
		painPoint: PainOperationalChallenge,
		keywords: []string{
			"manual", "spreadsheet", "time-consuming", "inefficien",
			"overhead", "too many tools", "paperwork",
		},
		confidence: 0.65,
	},
	{
		painPoint: PainRegulatoryCompliance,
		keywords: []string{
			"compliance", "regulation", "three-tier", "licensing",
			"legal", "ttb", "state laws",
		},
		confidence: 0.7,
	},
}
