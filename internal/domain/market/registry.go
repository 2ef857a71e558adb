package market

// Holding is one position inside an ETF, with its portfolio weight
type Holding struct {
	Ticker string  `json:"ticker"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// ETFRegistry maps sector ETF tickers to their descriptions
var ETFRegistry = map[string]string{
	"XLB": "Materials",
	"XLC": "Communication Services",
	"XLE": "Energy",
	"XLF": "Financials",
	"XLI": "Industrials",
	"XLK": "Technology",
	"XLP": "Consumer Staples",
	"XLU": "Utilities",
	"XLV": "Health Care",
	"XLY": "Consumer Discretionary",
	"XHB": "Homebuilders",
	"XME": "Metals & Mining",
	"XOP": "Oil & Gas Exploration",
	"XRT": "Retail",
	"KBE": "Banks",
	"KRE": "Regional Banks",
	"IBB": "Biotech",
	"IYR": "Real Estate",
	"IYT": "Transportation",
	"ITA": "Aerospace & Defense",
	"IGV": "Software",
	"SMH": "Semiconductors",
	"GDX": "Gold Miners",
	"SLV": "Silver",
	"GLD": "Gold",
	"URA": "Uranium",
	"TAN": "Solar Energy",
	"ARKK": "Innovation (ARK)",
	"HACK": "Cybersecurity",
	"JETS": "Airlines",
	"PAVE": "Infrastructure Development",
	"COPX": "Copper Miners",
	"LIT": "Lithium & Battery Tech",
	"BITO": "Bitcoin Strategy",
}

// IntlRegistry maps international ETF tickers to their descriptions
var IntlRegistry = map[string]string{
	"EWJ": "Japan",
	"KWEB": "China Internet",
	"MCHI": "China Large-Cap",
	"EWZ": "Brazil",
	"INDA": "India",
	"EWT": "Taiwan",
	"EFA": "Developed Markets ex-US",
	"EEM": "Emerging Markets",
	"EWG": "Germany",
	"EWY": "South Korea",
}

// ETFHoldings lists the top holdings per sector ETF
var ETFHoldings = map[string][]Holding{
	"XLB": {
		{Ticker: "LIN", Name: "Linde plc", Weight: 16.82},
		{Ticker: "SHW", Name: "Sherwin-Williams", Weight: 9.12},
		{Ticker: "FCX", Name: "Freeport-McMoRan", Weight: 7.85},
		{Ticker: "APD", Name: "Air Products & Chem", Weight: 7.24},
		{Ticker: "ECL", Name: "Ecolab", Weight: 5.98},
		{Ticker: "NEM", Name: "Newmont Corp", Weight: 5.46},
		{Ticker: "CTVA", Name: "Corteva", Weight: 4.72},
		{Ticker: "NUE", Name: "Nucor", Weight: 4.15},
		{Ticker: "VMC", Name: "Vulcan Materials", Weight: 3.89},
		{Ticker: "DOW", Name: "Dow Inc", Weight: 3.54},
	},
	"XLC": {
		{Ticker: "META", Name: "Meta Platforms", Weight: 22.56},
		{Ticker: "GOOGL", Name: "Alphabet A", Weight: 12.18},
		{Ticker: "GOOG", Name: "Alphabet C", Weight: 10.94},
		{Ticker: "NFLX", Name: "Netflix", Weight: 5.42},
		{Ticker: "T", Name: "AT&T", Weight: 4.86},
		{Ticker: "CMCSA", Name: "Comcast", Weight: 4.55},
		{Ticker: "DIS", Name: "Walt Disney", Weight: 4.32},
		{Ticker: "VZ", Name: "Verizon", Weight: 4.18},
		{Ticker: "TMUS", Name: "T-Mobile US", Weight: 4.02},
		{Ticker: "EA", Name: "Electronic Arts", Weight: 2.98},
	},
	"XLE": {
		{Ticker: "XOM", Name: "Exxon Mobil", Weight: 22.85},
		{Ticker: "CVX", Name: "Chevron", Weight: 16.42},
		{Ticker: "COP", Name: "ConocoPhillips", Weight: 8.15},
		{Ticker: "EOG", Name: "EOG Resources", Weight: 5.24},
		{Ticker: "SLB", Name: "Schlumberger", Weight: 4.98},
		{Ticker: "MPC", Name: "Marathon Petroleum", Weight: 4.72},
		{Ticker: "PSX", Name: "Phillips 66", Weight: 4.18},
		{Ticker: "VLO", Name: "Valero Energy", Weight: 3.85},
		{Ticker: "PXD", Name: "Pioneer Natural Res", Weight: 3.52},
		{Ticker: "OXY", Name: "Occidental Petroleum", Weight: 3.24},
	},
	"XLF": {
		{Ticker: "BRK.B", Name: "Berkshire Hathaway B", Weight: 13.56},
		{Ticker: "JPM", Name: "JPMorgan Chase", Weight: 10.24},
		{Ticker: "V", Name: "Visa", Weight: 7.85},
		{Ticker: "MA", Name: "Mastercard", Weight: 6.92},
		{Ticker: "BAC", Name: "Bank of America", Weight: 4.86},
		{Ticker: "WFC", Name: "Wells Fargo", Weight: 3.95},
		{Ticker: "GS", Name: "Goldman Sachs", Weight: 3.42},
		{Ticker: "MS", Name: "Morgan Stanley", Weight: 3.18},
		{Ticker: "SPGI", Name: "S&P Global", Weight: 3.05},
		{Ticker: "BLK", Name: "BlackRock", Weight: 2.86},
	},
	"XLI": {
		{Ticker: "GE", Name: "GE Aerospace", Weight: 8.95},
		{Ticker: "CAT", Name: "Caterpillar", Weight: 5.72},
		{Ticker: "UNP", Name: "Union Pacific", Weight: 4.86},
		{Ticker: "RTX", Name: "RTX Corp", Weight: 4.55},
		{Ticker: "HON", Name: "Honeywell", Weight: 4.32},
		{Ticker: "DE", Name: "Deere & Company", Weight: 4.12},
		{Ticker: "BA", Name: "Boeing", Weight: 3.85},
		{Ticker: "LMT", Name: "Lockheed Martin", Weight: 3.58},
		{Ticker: "ETN", Name: "Eaton Corp", Weight: 3.42},
		{Ticker: "UPS", Name: "United Parcel Service", Weight: 3.15},
	},
	"XLK": {
		{Ticker: "MSFT", Name: "Microsoft", Weight: 20.85},
		{Ticker: "AAPL", Name: "Apple", Weight: 20.42},
		{Ticker: "NVDA", Name: "NVIDIA", Weight: 14.56},
		{Ticker: "AVGO", Name: "Broadcom", Weight: 5.18},
		{Ticker: "CRM", Name: "Salesforce", Weight: 3.24},
		{Ticker: "ADBE", Name: "Adobe", Weight: 2.98},
		{Ticker: "AMD", Name: "AMD", Weight: 2.72},
		{Ticker: "CSCO", Name: "Cisco Systems", Weight: 2.56},
		{Ticker: "ACN", Name: "Accenture", Weight: 2.42},
		{Ticker: "ORCL", Name: "Oracle", Weight: 2.35},
	},
	"XLP": {
		{Ticker: "PG", Name: "Procter & Gamble", Weight: 14.85},
		{Ticker: "COST", Name: "Costco", Weight: 11.42},
		{Ticker: "KO", Name: "Coca-Cola", Weight: 9.56},
		{Ticker: "PEP", Name: "PepsiCo", Weight: 8.92},
		{Ticker: "WMT", Name: "Walmart", Weight: 7.85},
		{Ticker: "PM", Name: "Philip Morris", Weight: 5.24},
		{Ticker: "MDLZ", Name: "Mondelez", Weight: 3.98},
		{Ticker: "MO", Name: "Altria Group", Weight: 3.56},
		{Ticker: "CL", Name: "Colgate-Palmolive", Weight: 3.42},
		{Ticker: "STZ", Name: "Constellation Brands", Weight: 2.86},
	},
	"XLU": {
		{Ticker: "NEE", Name: "NextEra Energy", Weight: 14.85},
		{Ticker: "SO", Name: "Southern Company", Weight: 8.56},
		{Ticker: "DUK", Name: "Duke Energy", Weight: 7.92},
		{Ticker: "CEG", Name: "Constellation Energy", Weight: 6.85},
		{Ticker: "SRE", Name: "Sempra", Weight: 4.72},
		{Ticker: "AEP", Name: "American Electric Power", Weight: 4.56},
		{Ticker: "D", Name: "Dominion Energy", Weight: 4.24},
		{Ticker: "PCG", Name: "PG&E Corp", Weight: 3.98},
		{Ticker: "EXC", Name: "Exelon", Weight: 3.56},
		{Ticker: "XEL", Name: "Xcel Energy", Weight: 3.12},
	},
	"XLV": {
		{Ticker: "LLY", Name: "Eli Lilly", Weight: 11.85},
		{Ticker: "UNH", Name: "UnitedHealth Group", Weight: 9.56},
		{Ticker: "JNJ", Name: "Johnson & Johnson", Weight: 7.42},
		{Ticker: "MRK", Name: "Merck", Weight: 6.24},
		{Ticker: "ABBV", Name: "AbbVie", Weight: 6.12},
		{Ticker: "TMO", Name: "Thermo Fisher", Weight: 4.85},
		{Ticker: "ABT", Name: "Abbott Labs", Weight: 4.56},
		{Ticker: "DHR", Name: "Danaher", Weight: 3.92},
		{Ticker: "PFE", Name: "Pfizer", Weight: 3.56},
		{Ticker: "AMGN", Name: "Amgen", Weight: 3.24},
	},
	"XLY": {
		{Ticker: "AMZN", Name: "Amazon", Weight: 22.56},
		{Ticker: "TSLA", Name: "Tesla", Weight: 15.85},
		{Ticker: "HD", Name: "Home Depot", Weight: 8.42},
		{Ticker: "MCD", Name: "McDonald's", Weight: 4.56},
		{Ticker: "LOW", Name: "Lowe's", Weight: 3.92},
		{Ticker: "BKNG", Name: "Booking Holdings", Weight: 3.85},
		{Ticker: "NKE", Name: "Nike", Weight: 3.24},
		{Ticker: "SBUX", Name: "Starbucks", Weight: 3.12},
		{Ticker: "TJX", Name: "TJX Companies", Weight: 2.98},
		{Ticker: "CMG", Name: "Chipotle", Weight: 2.56},
	},
	"XHB": {
		{Ticker: "WSM", Name: "Williams-Sonoma", Weight: 5.24},
		{Ticker: "OC", Name: "Owens Corning", Weight: 4.98},
		{Ticker: "DHI", Name: "D.R. Horton", Weight: 4.72},
		{Ticker: "LEN", Name: "Lennar", Weight: 4.56},
		{Ticker: "PHM", Name: "PulteGroup", Weight: 4.42},
		{Ticker: "NVR", Name: "NVR Inc", Weight: 4.18},
		{Ticker: "FND", Name: "Floor & Decor", Weight: 3.95},
		{Ticker: "BLDR", Name: "Builders FirstSource", Weight: 3.82},
		{Ticker: "TOL", Name: "Toll Brothers", Weight: 3.68},
		{Ticker: "MHK", Name: "Mohawk Industries", Weight: 3.45},
	},
	"XME": {
		{Ticker: "ATI", Name: "ATI Inc", Weight: 5.86},
		{Ticker: "CLF", Name: "Cleveland-Cliffs", Weight: 5.42},
		{Ticker: "STLD", Name: "Steel Dynamics", Weight: 5.18},
		{Ticker: "RS", Name: "Reliance Steel", Weight: 4.92},
		{Ticker: "NUE", Name: "Nucor", Weight: 4.85},
		{Ticker: "FCX", Name: "Freeport-McMoRan", Weight: 4.72},
		{Ticker: "AA", Name: "Alcoa", Weight: 4.56},
		{Ticker: "X", Name: "United States Steel", Weight: 4.24},
		{Ticker: "MP", Name: "MP Materials", Weight: 3.98},
		{Ticker: "RGLD", Name: "Royal Gold", Weight: 3.82},
	},
	"XOP": {
		{Ticker: "COP", Name: "ConocoPhillips", Weight: 4.85},
		{Ticker: "DVN", Name: "Devon Energy", Weight: 4.56},
		{Ticker: "EOG", Name: "EOG Resources", Weight: 4.42},
		{Ticker: "PXD", Name: "Pioneer Natural Res", Weight: 4.28},
		{Ticker: "FANG", Name: "Diamondback Energy", Weight: 4.15},
		{Ticker: "MRO", Name: "Marathon Oil", Weight: 3.98},
		{Ticker: "OVV", Name: "Ovintiv", Weight: 3.82},
		{Ticker: "AR", Name: "Antero Resources", Weight: 3.68},
		{Ticker: "EQT", Name: "EQT Corp", Weight: 3.56},
		{Ticker: "CTRA", Name: "Coterra Energy", Weight: 3.42},
	},
	"XRT": {
		{Ticker: "BURL", Name: "Burlington Stores", Weight: 2.85},
		{Ticker: "KMX", Name: "CarMax", Weight: 2.72},
		{Ticker: "ANF", Name: "Abercrombie & Fitch", Weight: 2.56},
		{Ticker: "BOOT", Name: "Boot Barn", Weight: 2.42},
		{Ticker: "VSCO", Name: "Victoria's Secret", Weight: 2.35},
		{Ticker: "GAP", Name: "Gap Inc", Weight: 2.28},
		{Ticker: "BBY", Name: "Best Buy", Weight: 2.18},
		{Ticker: "DKS", Name: "Dick's Sporting", Weight: 2.12},
		{Ticker: "CASY", Name: "Casey's General", Weight: 2.05},
		{Ticker: "AZO", Name: "AutoZone", Weight: 1.98},
	},
	"KBE": {
		{Ticker: "JPM", Name: "JPMorgan Chase", Weight: 4.85},
		{Ticker: "BAC", Name: "Bank of America", Weight: 4.56},
		{Ticker: "WFC", Name: "Wells Fargo", Weight: 4.42},
		{Ticker: "GS", Name: "Goldman Sachs", Weight: 4.28},
		{Ticker: "MS", Name: "Morgan Stanley", Weight: 4.15},
		{Ticker: "C", Name: "Citigroup", Weight: 3.98},
		{Ticker: "USB", Name: "U.S. Bancorp", Weight: 3.82},
		{Ticker: "PNC", Name: "PNC Financial", Weight: 3.72},
		{Ticker: "TFC", Name: "Truist Financial", Weight: 3.56},
		{Ticker: "SCHW", Name: "Charles Schwab", Weight: 3.42},
	},
	"KRE": {
		{Ticker: "CFG", Name: "Citizens Financial", Weight: 3.85},
		{Ticker: "RF", Name: "Regions Financial", Weight: 3.72},
		{Ticker: "HBAN", Name: "Huntington Bancshares", Weight: 3.56},
		{Ticker: "KEY", Name: "KeyCorp", Weight: 3.42},
		{Ticker: "MTB", Name: "M&T Bank", Weight: 3.28},
		{Ticker: "CMA", Name: "Comerica", Weight: 3.15},
		{Ticker: "ZION", Name: "Zions Bancorporation", Weight: 3.05},
		{Ticker: "FHN", Name: "First Horizon", Weight: 2.92},
		{Ticker: "FITB", Name: "Fifth Third Bancorp", Weight: 2.85},
		{Ticker: "WAL", Name: "Western Alliance", Weight: 2.78},
	},
	"IBB": {
		{Ticker: "GILD", Name: "Gilead Sciences", Weight: 8.56},
		{Ticker: "AMGN", Name: "Amgen", Weight: 7.85},
		{Ticker: "VRTX", Name: "Vertex Pharma", Weight: 7.24},
		{Ticker: "REGN", Name: "Regeneron", Weight: 6.42},
		{Ticker: "MRNA", Name: "Moderna", Weight: 3.85},
		{Ticker: "BIIB", Name: "Biogen", Weight: 3.56},
		{Ticker: "ALNY", Name: "Alnylam Pharma", Weight: 3.24},
		{Ticker: "ILMN", Name: "Illumina", Weight: 2.98},
		{Ticker: "SGEN", Name: "Seagen", Weight: 2.72},
		{Ticker: "BMRN", Name: "BioMarin Pharma", Weight: 2.56},
	},
	"IYR": {
		{Ticker: "PLD", Name: "Prologis", Weight: 9.24},
		{Ticker: "AMT", Name: "American Tower", Weight: 7.12},
		{Ticker: "EQIX", Name: "Equinix", Weight: 6.42},
		{Ticker: "CCI", Name: "Crown Castle", Weight: 4.56},
		{Ticker: "SPG", Name: "Simon Property Group", Weight: 4.12},
		{Ticker: "PSA", Name: "Public Storage", Weight: 3.85},
		{Ticker: "O", Name: "Realty Income", Weight: 3.72},
		{Ticker: "DLR", Name: "Digital Realty", Weight: 3.56},
		{Ticker: "WELL", Name: "Welltower", Weight: 3.42},
		{Ticker: "VICI", Name: "VICI Properties", Weight: 3.18},
	},
	"IYT": {
		{Ticker: "UNP", Name: "Union Pacific", Weight: 14.56},
		{Ticker: "UPS", Name: "United Parcel Service", Weight: 10.42},
		{Ticker: "CSX", Name: "CSX Corp", Weight: 8.24},
		{Ticker: "NSC", Name: "Norfolk Southern", Weight: 7.12},
		{Ticker: "FDX", Name: "FedEx", Weight: 6.85},
		{Ticker: "DAL", Name: "Delta Air Lines", Weight: 4.56},
		{Ticker: "UAL", Name: "United Airlines", Weight: 3.85},
		{Ticker: "LUV", Name: "Southwest Airlines", Weight: 3.42},
		{Ticker: "JBHT", Name: "J.B. Hunt Transport", Weight: 3.24},
		{Ticker: "ODFL", Name: "Old Dominion Freight", Weight: 3.12},
	},
	"ITA": {
		{Ticker: "RTX", Name: "RTX Corp", Weight: 17.85},
		{Ticker: "LMT", Name: "Lockheed Martin", Weight: 14.56},
		{Ticker: "BA", Name: "Boeing", Weight: 8.42},
		{Ticker: "GD", Name: "General Dynamics", Weight: 6.24},
		{Ticker: "NOC", Name: "Northrop Grumman", Weight: 5.85},
		{Ticker: "GE", Name: "GE Aerospace", Weight: 5.42},
		{Ticker: "TDG", Name: "TransDigm Group", Weight: 4.85},
		{Ticker: "LHX", Name: "L3Harris Tech", Weight: 4.56},
		{Ticker: "HWM", Name: "Howmet Aerospace", Weight: 3.92},
		{Ticker: "HII", Name: "Huntington Ingalls", Weight: 3.24},
	},
	"IGV": {
		{Ticker: "MSFT", Name: "Microsoft", Weight: 9.56},
		{Ticker: "CRM", Name: "Salesforce", Weight: 7.85},
		{Ticker: "ORCL", Name: "Oracle", Weight: 7.24},
		{Ticker: "ADBE", Name: "Adobe", Weight: 5.42},
		{Ticker: "NOW", Name: "ServiceNow", Weight: 5.18},
		{Ticker: "INTU", Name: "Intuit", Weight: 4.85},
		{Ticker: "PANW", Name: "Palo Alto Networks", Weight: 4.56},
		{Ticker: "SNPS", Name: "Synopsys", Weight: 3.92},
		{Ticker: "CDNS", Name: "Cadence Design", Weight: 3.72},
		{Ticker: "WDAY", Name: "Workday", Weight: 3.42},
	},
	"SMH": {
		{Ticker: "NVDA", Name: "NVIDIA", Weight: 20.12},
		{Ticker: "TSM", Name: "TSMC", Weight: 12.85},
		{Ticker: "AVGO", Name: "Broadcom", Weight: 8.42},
		{Ticker: "AMD", Name: "AMD", Weight: 5.56},
		{Ticker: "TXN", Name: "Texas Instruments", Weight: 5.24},
		{Ticker: "QCOM", Name: "Qualcomm", Weight: 4.85},
		{Ticker: "INTC", Name: "Intel", Weight: 4.42},
		{Ticker: "MU", Name: "Micron Technology", Weight: 4.18},
		{Ticker: "AMAT", Name: "Applied Materials", Weight: 3.92},
		{Ticker: "LRCX", Name: "Lam Research", Weight: 3.56},
	},
	"GDX": {
		{Ticker: "NEM", Name: "Newmont Corp", Weight: 12.56},
		{Ticker: "GOLD", Name: "Barrick Gold", Weight: 8.42},
		{Ticker: "AEM", Name: "Agnico Eagle Mines", Weight: 8.24},
		{Ticker: "WPM", Name: "Wheaton Precious Metals", Weight: 6.56},
		{Ticker: "FNV", Name: "Franco-Nevada", Weight: 5.85},
		{Ticker: "GFI", Name: "Gold Fields", Weight: 4.72},
		{Ticker: "RGLD", Name: "Royal Gold", Weight: 3.98},
		{Ticker: "KGC", Name: "Kinross Gold", Weight: 3.72},
		{Ticker: "AU", Name: "AngloGold Ashanti", Weight: 3.42},
		{Ticker: "AGI", Name: "Alamos Gold", Weight: 3.18},
	},
	"SLV": {
		{Ticker: "Silver", Name: "Physical Silver Bullion", Weight: 100.0},
	},
	"GLD": {
		{Ticker: "Gold", Name: "Physical Gold Bullion", Weight: 100.0},
	},
	"URA": {
		{Ticker: "CCJ", Name: "Cameco Corp", Weight: 22.56},
		{Ticker: "NXE", Name: "NexGen Energy", Weight: 7.85},
		{Ticker: "SRUUF", Name: "Sprott Physical Uranium", Weight: 6.42},
		{Ticker: "UEC", Name: "Uranium Energy Corp", Weight: 5.24},
		{Ticker: "DNN", Name: "Denison Mines", Weight: 4.85},
		{Ticker: "EU", Name: "enCore Energy", Weight: 4.12},
		{Ticker: "LEU", Name: "Centrus Energy", Weight: 3.72},
		{Ticker: "UUUU", Name: "Energy Fuels", Weight: 3.42},
		{Ticker: "BWXT", Name: "BWX Technologies", Weight: 3.18},
		{Ticker: "SMR", Name: "NuScale Power", Weight: 2.98},
	},
	"TAN": {
		{Ticker: "ENPH", Name: "Enphase Energy", Weight: 10.56},
		{Ticker: "SEDG", Name: "SolarEdge Tech", Weight: 6.85},
		{Ticker: "FSLR", Name: "First Solar", Weight: 6.42},
		{Ticker: "RUN", Name: "Sunrun", Weight: 5.24},
		{Ticker: "NOVA", Name: "Sunnova Energy", Weight: 3.85},
		{Ticker: "ARRY", Name: "Array Technologies", Weight: 3.56},
		{Ticker: "CSIQ", Name: "Canadian Solar", Weight: 3.42},
		{Ticker: "JKS", Name: "JinkoSolar", Weight: 3.18},
		{Ticker: "MAXN", Name: "Maxeon Solar", Weight: 2.56},
		{Ticker: "SHLS", Name: "Shoals Technologies", Weight: 2.42},
	},
	"ARKK": {
		{Ticker: "TSLA", Name: "Tesla", Weight: 12.56},
		{Ticker: "COIN", Name: "Coinbase", Weight: 8.42},
		{Ticker: "ROKU", Name: "Roku", Weight: 7.24},
		{Ticker: "SQ", Name: "Block (Square)", Weight: 5.85},
		{Ticker: "PATH", Name: "UiPath", Weight: 5.42},
		{Ticker: "RBLX", Name: "Roblox", Weight: 4.85},
		{Ticker: "DKNG", Name: "DraftKings", Weight: 4.56},
		{Ticker: "HOOD", Name: "Robinhood", Weight: 4.24},
		{Ticker: "ZM", Name: "Zoom Video", Weight: 3.98},
		{Ticker: "PLTR", Name: "Palantir", Weight: 3.72},
	},
	"HACK": {
		{Ticker: "CRWD", Name: "CrowdStrike", Weight: 6.85},
		{Ticker: "PANW", Name: "Palo Alto Networks", Weight: 6.42},
		{Ticker: "FTNT", Name: "Fortinet", Weight: 5.85},
		{Ticker: "ZS", Name: "Zscaler", Weight: 5.24},
		{Ticker: "CSCO", Name: "Cisco Systems", Weight: 4.85},
		{Ticker: "AKAM", Name: "Akamai Technologies", Weight: 4.42},
		{Ticker: "GEN", Name: "Gen Digital", Weight: 3.98},
		{Ticker: "TENB", Name: "Tenable Holdings", Weight: 3.56},
		{Ticker: "SAIL", Name: "SailPoint Tech", Weight: 3.24},
		{Ticker: "CYBR", Name: "CyberArk Software", Weight: 3.12},
	},
	"JETS": {
		{Ticker: "DAL", Name: "Delta Air Lines", Weight: 10.56},
		{Ticker: "UAL", Name: "United Airlines", Weight: 10.24},
		{Ticker: "LUV", Name: "Southwest Airlines", Weight: 10.12},
		{Ticker: "AAL", Name: "American Airlines", Weight: 9.85},
		{Ticker: "ALK", Name: "Alaska Air Group", Weight: 4.56},
		{Ticker: "JBLU", Name: "JetBlue Airways", Weight: 3.85},
		{Ticker: "SAVE", Name: "Spirit Airlines", Weight: 3.42},
		{Ticker: "HA", Name: "Hawaiian Airlines", Weight: 2.98},
		{Ticker: "RYAAY", Name: "Ryanair Holdings", Weight: 2.72},
		{Ticker: "SKYW", Name: "SkyWest Inc", Weight: 2.56},
	},
	"PAVE": {
		{Ticker: "CARR", Name: "Carrier Global", Weight: 4.85},
		{Ticker: "ETN", Name: "Eaton Corp", Weight: 4.56},
		{Ticker: "URI", Name: "United Rentals", Weight: 4.32},
		{Ticker: "NUE", Name: "Nucor", Weight: 4.18},
		{Ticker: "PWR", Name: "Quanta Services", Weight: 4.05},
		{Ticker: "EMR", Name: "Emerson Electric", Weight: 3.92},
		{Ticker: "MLM", Name: "Martin Marietta", Weight: 3.78},
		{Ticker: "VMC", Name: "Vulcan Materials", Weight: 3.56},
		{Ticker: "AME", Name: "Ametek", Weight: 3.42},
		{Ticker: "FAST", Name: "Fastenal", Weight: 3.28},
	},
	"COPX": {
		{Ticker: "FCX", Name: "Freeport-McMoRan", Weight: 14.56},
		{Ticker: "SCCO", Name: "Southern Copper", Weight: 9.85},
		{Ticker: "TECK", Name: "Teck Resources", Weight: 6.42},
		{Ticker: "HBM", Name: "Hudbay Minerals", Weight: 5.24},
		{Ticker: "ERO", Name: "Ero Copper", Weight: 4.85},
		{Ticker: "IVPAF", Name: "Ivanhoe Mines", Weight: 4.56},
		{Ticker: "CS", Name: "Capstone Copper", Weight: 4.18},
		{Ticker: "FM.TO", Name: "First Quantum Minerals", Weight: 3.92},
		{Ticker: "LUN.TO", Name: "Lundin Mining", Weight: 3.72},
		{Ticker: "TGB", Name: "Taseko Mines", Weight: 3.42},
	},
	"LIT": {
		{Ticker: "ALB", Name: "Albemarle", Weight: 10.56},
		{Ticker: "SQM", Name: "Sociedad Quimica", Weight: 7.85},
		{Ticker: "BYDDY", Name: "BYD Company", Weight: 6.42},
		{Ticker: "TM", Name: "Toyota Motor", Weight: 5.24},
		{Ticker: "PANW", Name: "Panasonic Holdings", Weight: 4.85},
		{Ticker: "ENR", Name: "Energizer Holdings", Weight: 4.42},
		{Ticker: "LTHM", Name: "Livent", Weight: 4.18},
		{Ticker: "LAC", Name: "Lithium Americas", Weight: 3.92},
		{Ticker: "PLL", Name: "Piedmont Lithium", Weight: 3.56},
		{Ticker: "SGML", Name: "Sigma Lithium", Weight: 3.24},
	},
	"BITO": {
		{Ticker: "BTC", Name: "Bitcoin Futures (CME)", Weight: 100.0},
	},
}

// IntlHoldings lists the top holdings per international ETF
var IntlHoldings = map[string][]Holding{
	"EWJ": {
		{Ticker: "TM", Name: "Toyota Motor", Weight: 5.42},
		{Ticker: "MUFG", Name: "Mitsubishi UFJ Financial", Weight: 4.18},
		{Ticker: "SONY", Name: "Sony Group", Weight: 3.85},
		{Ticker: "8035.T", Name: "Tokyo Electron", Weight: 3.56},
		{Ticker: "8306.T", Name: "Sumitomo Mitsui Financial", Weight: 3.24},
		{Ticker: "6758.T", Name: "Hitachi", Weight: 2.98},
		{Ticker: "6501.T", Name: "Keyence", Weight: 2.72},
		{Ticker: "9984.T", Name: "SoftBank Group", Weight: 2.56},
		{Ticker: "7203.T", Name: "Recruit Holdings", Weight: 2.42},
		{Ticker: "6902.T", Name: "Shin-Etsu Chemical", Weight: 2.28},
	},
	"KWEB": {
		{Ticker: "PDD", Name: "PDD Holdings", Weight: 10.56},
		{Ticker: "BABA", Name: "Alibaba Group", Weight: 9.85},
		{Ticker: "TCOM", Name: "Trip.com Group", Weight: 7.24},
		{Ticker: "JD", Name: "JD.com", Weight: 6.42},
		{Ticker: "BIDU", Name: "Baidu", Weight: 5.85},
		{Ticker: "NTES", Name: "NetEase", Weight: 5.24},
		{Ticker: "BILI", Name: "Bilibili", Weight: 4.56},
		{Ticker: "KC", Name: "Kingsoft Cloud", Weight: 3.85},
		{Ticker: "MNSO", Name: "Miniso Group", Weight: 3.42},
		{Ticker: "ZTO", Name: "ZTO Express", Weight: 3.12},
	},
	"MCHI": {
		{Ticker: "BABA", Name: "Alibaba Group", Weight: 10.24},
		{Ticker: "TCEHY", Name: "Tencent Holdings", Weight: 9.56},
		{Ticker: "PDD", Name: "PDD Holdings", Weight: 6.85},
		{Ticker: "3690.HK", Name: "Meituan", Weight: 5.42},
		{Ticker: "JD", Name: "JD.com", Weight: 4.85},
		{Ticker: "939.HK", Name: "China Construction Bank", Weight: 3.92},
		{Ticker: "NTES", Name: "NetEase", Weight: 3.56},
		{Ticker: "1398.HK", Name: "ICBC", Weight: 3.24},
		{Ticker: "BIDU", Name: "Baidu", Weight: 2.98},
		{Ticker: "2318.HK", Name: "Ping An Insurance", Weight: 2.72},
	},
	"EWZ": {
		{Ticker: "VALE", Name: "Vale S.A.", Weight: 14.56},
		{Ticker: "PBR", Name: "Petrobras", Weight: 10.85},
		{Ticker: "ITUB", Name: "Itau Unibanco", Weight: 7.24},
		{Ticker: "BBD", Name: "Banco Bradesco", Weight: 5.42},
		{Ticker: "NU", Name: "Nu Holdings", Weight: 4.85},
		{Ticker: "WEG", Name: "WEG S.A.", Weight: 4.18},
		{Ticker: "B3SA3.SA", Name: "B3 - Brasil Bolsa", Weight: 3.72},
		{Ticker: "ABEV", Name: "Ambev", Weight: 3.42},
		{Ticker: "SUZB3.SA", Name: "Suzano", Weight: 3.18},
		{Ticker: "RENT3.SA", Name: "Localiza", Weight: 2.85},
	},
	"INDA": {
		{Ticker: "RELIANCE.NS", Name: "Reliance Industries", Weight: 10.56},
		{Ticker: "INFY", Name: "Infosys", Weight: 6.85},
		{Ticker: "HDB", Name: "HDFC Bank", Weight: 6.42},
		{Ticker: "TCS.NS", Name: "Tata Consultancy", Weight: 4.85},
		{Ticker: "ICICIBANK.NS", Name: "ICICI Bank", Weight: 4.56},
		{Ticker: "BHARTIARTL.NS", Name: "Bharti Airtel", Weight: 3.92},
		{Ticker: "LT.NS", Name: "Larsen & Toubro", Weight: 3.42},
		{Ticker: "HINDUNILVR.NS", Name: "Hindustan Unilever", Weight: 3.18},
		{Ticker: "SBIN.NS", Name: "State Bank of India", Weight: 2.85},
		{Ticker: "ITC.NS", Name: "ITC Limited", Weight: 2.56},
	},
	"EWT": {
		{Ticker: "TSM", Name: "TSMC", Weight: 23.56},
		{Ticker: "2317.TW", Name: "Hon Hai Precision", Weight: 5.42},
		{Ticker: "2454.TW", Name: "MediaTek", Weight: 5.18},
		{Ticker: "2330.TW", Name: "Delta Electronics", Weight: 3.85},
		{Ticker: "2881.TW", Name: "Fubon Financial", Weight: 3.42},
		{Ticker: "2882.TW", Name: "Cathay Financial", Weight: 3.18},
		{Ticker: "2891.TW", Name: "CTBC Financial", Weight: 2.85},
		{Ticker: "1303.TW", Name: "Nan Ya Plastics", Weight: 2.56},
		{Ticker: "2303.TW", Name: "United Micro", Weight: 2.42},
		{Ticker: "3711.TW", Name: "ASE Technology", Weight: 2.28},
	},
	"EFA": {
		{Ticker: "NOVO-B.CO", Name: "Novo Nordisk", Weight: 2.85},
		{Ticker: "ASML", Name: "ASML Holding", Weight: 2.56},
		{Ticker: "NESN.SW", Name: "Nestle", Weight: 2.12},
		{Ticker: "AZN", Name: "AstraZeneca", Weight: 1.98},
		{Ticker: "SHEL", Name: "Shell", Weight: 1.85},
		{Ticker: "ROG.SW", Name: "Roche Holding", Weight: 1.72},
		{Ticker: "NOVN.SW", Name: "Novartis", Weight: 1.65},
		{Ticker: "SAP", Name: "SAP SE", Weight: 1.56},
		{Ticker: "TM", Name: "Toyota Motor", Weight: 1.42},
		{Ticker: "HSBA.L", Name: "HSBC Holdings", Weight: 1.38},
	},
	"EEM": {
		{Ticker: "TSM", Name: "TSMC", Weight: 9.85},
		{Ticker: "TCEHY", Name: "Tencent Holdings", Weight: 4.56},
		{Ticker: "BABA", Name: "Alibaba Group", Weight: 3.42},
		{Ticker: "005930.KS", Name: "Samsung Electronics", Weight: 3.85},
		{Ticker: "RELIANCE.NS", Name: "Reliance Industries", Weight: 2.18},
		{Ticker: "PDD", Name: "PDD Holdings", Weight: 1.98},
		{Ticker: "3690.HK", Name: "Meituan", Weight: 1.72},
		{Ticker: "INFY", Name: "Infosys", Weight: 1.56},
		{Ticker: "VALE", Name: "Vale S.A.", Weight: 1.42},
		{Ticker: "2317.TW", Name: "Hon Hai Precision", Weight: 1.28},
	},
	"EWG": {
		{Ticker: "SAP", Name: "SAP SE", Weight: 14.56},
		{Ticker: "SIE.DE", Name: "Siemens", Weight: 9.85},
		{Ticker: "ALV.DE", Name: "Allianz", Weight: 7.24},
		{Ticker: "DTE.DE", Name: "Deutsche Telekom", Weight: 6.42},
		{Ticker: "MUV2.DE", Name: "Munich Re", Weight: 4.85},
		{Ticker: "MBG.DE", Name: "Mercedes-Benz", Weight: 3.92},
		{Ticker: "IFX.DE", Name: "Infineon Technologies", Weight: 3.56},
		{Ticker: "AIR.PA", Name: "Airbus", Weight: 3.24},
		{Ticker: "BAS.DE", Name: "BASF", Weight: 2.98},
		{Ticker: "BMW.DE", Name: "BMW", Weight: 2.72},
	},
	"EWY": {
		{Ticker: "005930.KS", Name: "Samsung Electronics", Weight: 22.56},
		{Ticker: "000660.KS", Name: "SK Hynix", Weight: 8.42},
		{Ticker: "373220.KS", Name: "LG Energy Solution", Weight: 4.85},
		{Ticker: "207940.KS", Name: "Samsung Biologics", Weight: 3.92},
		{Ticker: "005490.KS", Name: "POSCO Holdings", Weight: 3.56},
		{Ticker: "035420.KS", Name: "Naver Corp", Weight: 3.24},
		{Ticker: "006400.KS", Name: "Samsung SDI", Weight: 2.98},
		{Ticker: "051910.KS", Name: "LG Chem", Weight: 2.72},
		{Ticker: "035720.KS", Name: "Kakao Corp", Weight: 2.56},
		{Ticker: "068270.KS", Name: "Celltrion", Weight: 2.42},
	},
}
