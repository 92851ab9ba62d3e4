package journal

const Schema = `
CREATE TABLE IF NOT EXISTS quotes (
	run_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	formula TEXT NOT NULL,
	option_type TEXT NOT NULL,
	barrier_type TEXT NOT NULL,
	barrier REAL NOT NULL,
	spot REAL NOT NULL,
	strike REAL NOT NULL,
	maturity REAL NOT NULL,
	rate REAL NOT NULL,
	volatility REAL NOT NULL,
	price REAL NOT NULL,
	delta REAL NOT NULL,
	gamma REAL NOT NULL,
	vega REAL NOT NULL,
	theta REAL NOT NULL,
	rho REAL NOT NULL,
	storage_cost REAL NOT NULL,
	convenience_yield REAL NOT NULL,
	futures_price REAL NOT NULL,
	position TEXT NOT NULL,
	financing_rate REAL NOT NULL,
	holding_period_days REAL NOT NULL,
	cfd_price REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS curve_points (
	run_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	spot REAL NOT NULL,
	price REAL NOT NULL,
	PRIMARY KEY (run_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_quotes_time ON quotes(time);
`

const quoteColumns = `run_id, time, formula, option_type, barrier_type, barrier,
	spot, strike, maturity, rate, volatility,
	price, delta, gamma, vega, theta, rho,
	storage_cost, convenience_yield, futures_price,
	position, financing_rate, holding_period_days, cfd_price`
