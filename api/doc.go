// SPDX-License-Identifier: MIT

// Package api exposes the quantlab calculators over HTTP as JSON.
//
// Routes:
//
//	GET  /normal/cdf?x=&mu=&sigma=     Φ((x−μ)/σ); mu and sigma default to 0 and 1
//	GET  /normal/pdf?x=&mu=&sigma=
//	GET  /normal/quantile?p=&mu=&sigma=
//	GET  /t/cdf?t=&df=
//	GET  /t/quantile?p=&df=
//	GET  /ztable?format=&precision=
//	POST /describe          {"data": [...]}
//	POST /matrix/eigen      {"a":..,"b":..,"c":..,"d":..}
//	POST /matrix/inverse    {"a":..,"b":..,"c":..,"d":..}
//	POST /matrix/multiply   {"left": {...}, "right": {...}}
//	POST /ttest             {"kind": "welch", "x": [...], "y": [...], "tail": "two-sided"}
//	POST /sample/normal     {"mean":0,"std_dev":1,"count":100,"seed":7}
//	POST /clt               {"population":"exponential","sample_size":30,"count":1000}
//
// Malformed input is answered with 400, arguments outside a function's domain
// with 422, both as {"error": "..."}. An eigen request without a real solution
// is a 200 with "real": false.
package api
