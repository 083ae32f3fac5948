package renderer

// groundVertexSource transforms the ground plane and forwards world positions.
const groundVertexSource = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uView;
uniform mat4 uProj;

out vec3 vWorldPos;

void main() {
	vWorldPos = aPos;
	gl_Position = uProj * uView * vec4(aPos, 1.0);
}
`

// groundFragmentSource integrates each light polygon against the clamped
// cosine, which is the LTC integral with the identity transform.
const groundFragmentSource = `
#version 410 core

const float PI = 3.14159265;
const int MAX_LIGHTS = 32;
const int TYPE_RECTANGLE = 0;
const int TYPE_CYLINDER = 1;
const int TYPE_DISK = 2;
const int TYPE_SPHERE = 3;

in vec3 vWorldPos;
out vec4 FragColor;

uniform vec3 uEye;
uniform float uDiffuse;
uniform float uSpecular;
uniform float uRoughness;

uniform int uLightCount;
uniform int uLightTypes[MAX_LIGHTS];
uniform vec3 uLightPoints[MAX_LIGHTS * 4];
uniform vec3 uLightColors[MAX_LIGHTS];
uniform float uLightIntensities[MAX_LIGHTS];
uniform float uLightRadii[MAX_LIGHTS];

vec3 edgeIntegral(vec3 a, vec3 b) {
	float c = clamp(dot(a, b), -0.9999, 0.9999);
	float theta = acos(c);
	return cross(a, b) * (theta / sin(theta));
}

// Two-sided form factor of a quad seen from p, projected on n.
float formFactor(vec3 p, vec3 n, vec3 q[4]) {
	vec3 l[4];
	for (int i = 0; i < 4; i++) {
		l[i] = normalize(q[i] - p);
	}
	vec3 f = vec3(0.0);
	for (int i = 0; i < 4; i++) {
		f += edgeIntegral(l[i], l[(i + 1) % 4]);
	}
	return abs(dot(f, n)) / (2.0 * PI);
}

void lightQuad(int i, vec3 p, out vec3 q[4]) {
	for (int j = 0; j < 4; j++) {
		q[j] = uLightPoints[i * 4 + j];
	}
	if (uLightTypes[i] == TYPE_CYLINDER) {
		vec3 p0 = q[0];
		vec3 p1 = q[1];
		vec3 w = normalize(cross(p1 - p0, 0.5 * (p0 + p1) - p)) * uLightRadii[i];
		q[0] = p0 - w;
		q[1] = p1 - w;
		q[2] = p1 + w;
		q[3] = p0 + w;
	}
}

void main() {
	vec3 n = vec3(0.0, 1.0, 0.0);
	vec3 v = normalize(uEye - vWorldPos);
	vec3 r = reflect(-v, n);

	vec3 color = vec3(0.0);
	for (int i = 0; i < uLightCount; i++) {
		vec3 q[4];
		lightQuad(i, vWorldPos, q);

		float area = 1.0;
		if (uLightTypes[i] == TYPE_DISK || uLightTypes[i] == TYPE_SPHERE) {
			area = PI / 4.0;
		}

		float diffuse = formFactor(vWorldPos, n, q) * area;
		// Cosine lobe about the mirror direction, sharpened as roughness drops.
		float glossy = formFactor(vWorldPos, r, q) * area / max(uRoughness, 0.08);
		vec3 radiance = uLightColors[i] * uLightIntensities[i];
		color += radiance * (uDiffuse * diffuse + uSpecular * glossy);
	}

	color = vec3(1.0) - exp(-color);
	FragColor = vec4(pow(color, vec3(1.0 / 2.2)), 1.0);
}
`

// emitterVertexSource draws light outlines in world space.
const emitterVertexSource = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uView;
uniform mat4 uProj;

void main() {
	gl_Position = uProj * uView * vec4(aPos, 1.0);
}
`

// emitterFragmentSource fills emitters with their flat color.
const emitterFragmentSource = `
#version 410 core

uniform vec3 uColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`
