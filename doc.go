/*
newsapi implements a client for the NewsAPI service
https://newsapi.org/docs

Requests are constructed through builders, validated locally, then sent over
a pluggable Transport inside a configurable retry policy. Non-2xx responses
are classified into a closed set of error codes.
*/
package newsapi
