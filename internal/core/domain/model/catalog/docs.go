// Package catalog contains the read-only catalog model of orderable network
// services. A Service describes a network product (fiber, VPN, dedicated
// link) with its bandwidth bounds and tiered pricing. The workflows never
// mutate catalog data; they consult it to validate requested bandwidths and
// to compute monthly and setup costs.
//
// Pricing is tiered: the base monthly price covers bandwidth up to the base
// bandwidth; every Mbps above it is billed at the per-Mbps rate. Bandwidth
// below the base is not discounted, so the base price is a monthly floor.
package catalog
